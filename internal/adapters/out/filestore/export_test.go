package filestore

import "restaurant/internal/core/ports"

// SetRename replaces the rename step of a FileUnitOfWork created by this package.
func SetRename(uow ports.UnitOfWork, rename func(oldpath, newpath string) error) {
	uow.(*FileUnitOfWork).rename = rename
}

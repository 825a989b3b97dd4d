// Package filestore provides the file-backed implementation of the Unit of Work pattern
// for the pending and fulfilled order stores.
//
// Writes made through the repositories of a unit of work are held in memory and applied
// on Commit in two phases: every staged document is first written to a temporary file,
// then the temporary files are renamed over their targets. If a rename fails, stores
// already replaced in this commit are put back to their previous content, so either
// every store changes or none does.
//
// Usage:
//
//	factory := filestore.NewFileUnitOfWorkFactory("orders.json", "output_orders.json", logger)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	pending, err := uow.PendingOrderRepository().GetAll(ctx)
//	// ... mutate and SaveAll both repositories
//	return uow.Commit(ctx)
//
// Only one process is expected to touch the stores at a time; there is no file locking.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"restaurant/internal/adapters/out/filestore/orderrepo"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// FileUnitOfWorkFactory creates unit of work instances over two store files.
type FileUnitOfWorkFactory struct {
	pendingPath   string
	fulfilledPath string
	disk          *DiskStorage
	logger        *log.Logger
}

// NewFileUnitOfWorkFactory creates a factory for the given store paths.
func NewFileUnitOfWorkFactory(pendingPath, fulfilledPath string, logger *log.Logger) *FileUnitOfWorkFactory {
	return &FileUnitOfWorkFactory{
		pendingPath:   pendingPath,
		fulfilledPath: fulfilledPath,
		disk:          NewDiskStorage(logger),
		logger:        logger,
	}
}

// Create produces a new UnitOfWork with its own staging area and id.
func (f *FileUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &FileUnitOfWork{
		id:            uuid.New(),
		pendingPath:   f.pendingPath,
		fulfilledPath: f.fulfilledPath,
		disk:          f.disk,
		logger:        f.logger,
		rename:        os.Rename,
	}
}

// stagedDocument is the new content of one store plus what it replaced.
type stagedDocument struct {
	path     string
	data     []byte
	original []byte
	existed  bool
}

// FileUnitOfWork coordinates writes to both order stores.
// Outside Begin/Commit its repositories read and write the disk directly.
type FileUnitOfWork struct {
	id            uuid.UUID
	pendingPath   string
	fulfilledPath string
	disk          *DiskStorage
	logger        *log.Logger
	rename        func(oldpath, newpath string) error

	active bool
	staged []*stagedDocument
}

// Begin starts collecting writes. Calling Begin on an active unit of work is a no-op.
func (uow *FileUnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.active = true
	uow.staged = nil
	uow.logger.Debugj(log.JSON{"event": "uow_begin", "uow": uow.id.String()})
	return nil
}

// Commit applies every staged write, or none of them.
// The unit of work is closed afterwards whatever the outcome.
func (uow *FileUnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	defer uow.reset()

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := uow.apply(); err != nil {
		uow.logger.Errorj(log.JSON{"event": "uow_commit_failed", "uow": uow.id.String(), "error": err.Error()})
		return err
	}

	paths := make([]string, 0, len(uow.staged))
	for _, doc := range uow.staged {
		paths = append(paths, doc.path)
	}
	uow.logger.Debugj(log.JSON{"event": "uow_commit", "uow": uow.id.String(), "stores": paths})
	return nil
}

// Rollback drops staged writes. Nothing on disk has changed at this point.
func (uow *FileUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.logger.Debugj(log.JSON{"event": "uow_rollback", "uow": uow.id.String(), "staged": len(uow.staged)})
	uow.reset()
	return nil
}

// PendingOrderRepository returns the pending store bound to this unit of work.
func (uow *FileUnitOfWork) PendingOrderRepository() ports.OrderRepository {
	return orderrepo.NewJSONOrderRepository(uow, uow.pendingPath, order.Pending)
}

// FulfilledOrderRepository returns the fulfilled archive bound to this unit of work.
func (uow *FileUnitOfWork) FulfilledOrderRepository() ports.OrderRepository {
	return orderrepo.NewJSONOrderRepository(uow, uow.fulfilledPath, order.Fulfilled)
}

// ReadFile returns staged content when the store was written in this unit of work,
// the disk content otherwise.
func (uow *FileUnitOfWork) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if doc := uow.find(path); doc != nil {
		return append([]byte(nil), doc.data...), nil
	}
	return uow.disk.ReadFile(ctx, path)
}

// WriteFile stages data for path. Without an active transaction the write goes
// straight to disk.
func (uow *FileUnitOfWork) WriteFile(ctx context.Context, path string, data []byte) error {
	if !uow.active {
		return uow.disk.WriteFile(ctx, path, data)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if doc := uow.find(path); doc != nil {
		doc.data = append([]byte(nil), data...)
		return nil
	}

	original, err := os.ReadFile(path)
	existed := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	uow.staged = append(uow.staged, &stagedDocument{
		path:     path,
		data:     append([]byte(nil), data...),
		original: original,
		existed:  existed,
	})
	return nil
}

func (uow *FileUnitOfWork) apply() error {
	temps := make([]string, len(uow.staged))
	for i, doc := range uow.staged {
		tmp, err := stageFile(doc.path, doc.data, uow.id.String())
		if err != nil {
			removeAll(temps[:i])
			return fmt.Errorf("stage %s: %w", doc.path, err)
		}
		temps[i] = tmp
	}

	for i, doc := range uow.staged {
		if err := uow.rename(temps[i], doc.path); err != nil {
			removeAll(temps[i:])
			return errors.Join(
				fmt.Errorf("replace %s: %w", doc.path, err),
				uow.restore(uow.staged[:i]),
			)
		}
	}

	return nil
}

// restore puts already replaced stores back to their content before the commit.
func (uow *FileUnitOfWork) restore(docs []*stagedDocument) error {
	var errList []error
	for _, doc := range docs {
		if !doc.existed {
			if err := os.Remove(doc.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				errList = append(errList, fmt.Errorf("restore %s: %w", doc.path, err))
			}
			continue
		}

		tmp, err := stageFile(doc.path, doc.original, uow.id.String()+"-restore")
		if err == nil {
			err = os.Rename(tmp, doc.path)
		}
		if err != nil {
			errList = append(errList, fmt.Errorf("restore %s: %w", doc.path, err))
		}
	}
	return errors.Join(errList...)
}

func (uow *FileUnitOfWork) find(path string) *stagedDocument {
	for _, doc := range uow.staged {
		if doc.path == path {
			return doc
		}
	}
	return nil
}

func (uow *FileUnitOfWork) reset() {
	uow.active = false
	uow.staged = nil
}

func removeAll(paths []string) {
	for _, p := range paths {
		if p != "" {
			_ = os.Remove(p)
		}
	}
}

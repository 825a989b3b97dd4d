// Package kernel provides core domain primitives shared by the order model.
//
// The package includes:
//   - OrderID: the case-normalized order identifier typed in by staff
//
// Primitives are immutable value objects; their zero value is invalid and is
// rejected by Validate.
package kernel

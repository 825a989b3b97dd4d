package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"restaurant/internal/core/domain/model/order"
)

// Storage reads and writes whole store documents by path.
// ReadFile returns an error matching fs.ErrNotExist for a store that was never written.
type Storage interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte) error
}

// JSONOrderRepository implements ports.OrderRepository for one JSON store file.
type JSONOrderRepository struct {
	storage Storage
	path    string
	status  order.Status
}

// NewJSONOrderRepository creates a repository over the store at path. Orders read from
// it are restored with status, which is Pending for the pending store and Fulfilled
// for the archive.
func NewJSONOrderRepository(storage Storage, path string, status order.Status) *JSONOrderRepository {
	return &JSONOrderRepository{
		storage: storage,
		path:    path,
		status:  status,
	}
}

// GetAll loads every order of the store. A missing store is an empty list.
func (r *JSONOrderRepository) GetAll(ctx context.Context) (*order.List, error) {
	data, err := r.storage.ReadFile(ctx, r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return order.NewList(), nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	orders, err := Decode(data, r.status)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", r.path, err)
	}
	return orders, nil
}

// SaveAll replaces the store content with orders.
func (r *JSONOrderRepository) SaveAll(ctx context.Context, orders *order.List) error {
	for _, o := range orders.Orders() {
		if err := o.Validate(); err != nil {
			return err
		}
	}

	data, err := Encode(orders)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.path, err)
	}

	if err = r.storage.WriteFile(ctx, r.path, data); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}

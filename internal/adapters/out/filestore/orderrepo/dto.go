// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate on top of JSON
// documents, handling the conversion between domain entities and their stored representation.
package orderrepo

import (
	"bytes"
	"encoding/json"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderDTO is one element of the stored JSON array.
type OrderDTO struct {
	OrderID  string        `json:"order_id"`
	Customer string        `json:"customer"`
	Items    []LineItemDTO `json:"items"`
}

// LineItemDTO is one element of an order's "items" array.
type LineItemDTO struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// fromDomain converts an order aggregate to its stored representation.
func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dto := OrderDTO{
		OrderID:  o.ID().String(),
		Customer: o.Customer(),
		Items:    make([]LineItemDTO, 0, len(items)),
	}
	for _, item := range items {
		dto.Items = append(dto.Items, LineItemDTO{
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}
	return dto
}

// toDomain rebuilds an order with the status of the store it was read from.
// Stored records go through the same validation as newly created orders.
func toDomain(dto OrderDTO, status order.Status) (*order.Order, error) {
	id, err := kernel.RestoreOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(itemDTO.Name, itemDTO.Price, itemDTO.Quantity)
		if itemErr != nil {
			return nil, fmt.Errorf("order %s: %w", id, itemErr)
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.Customer, items, status)
}

// Encode renders orders as an indented JSON array. Non-ASCII text and HTML
// characters are written literally.
func Encode(orders *order.List) ([]byte, error) {
	dtos := make([]OrderDTO, 0, orders.Len())
	for _, o := range orders.Orders() {
		dtos = append(dtos, fromDomain(o))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(dtos); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a stored JSON array, marking every order with status.
func Decode(data []byte, status order.Status) (*order.List, error) {
	var dtos []OrderDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("malformed order store: %w", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for i, dto := range dtos {
		o, err := toDomain(dto, status)
		if err != nil {
			return nil, fmt.Errorf("malformed order store: record %d: %w", i+1, err)
		}
		orders = append(orders, o)
	}

	return order.NewList(orders...), nil
}

package model

import "context"

// TeaStore defines persistence operations for teas.
type TeaStore interface {
	List(ctx context.Context) ([]Tea, error)
	Create(ctx context.Context, tea Tea) (Tea, error)
	Update(ctx context.Context, tea Tea) (Tea, error)
	Delete(ctx context.Context, id int64) error
}

// Tea represents a tea in the collection.
type Tea struct {
	ID     int64
	Name   string
	Origin string
}

// TeaParams contains the mutable fields of a tea.
type TeaParams struct {
	Name   string
	Origin string
}

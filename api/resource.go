package api

import (
	"context"
	"fmt"
	"net/http"
)

// Resource is a backend collection following the /{name}/{name}/... layout:
// all, {id}, create, update/{id} and delete/{id}.
type Resource[T any] struct {
	client     *Client
	prefix     string
	deletePath string
}

func NewResource[T any](c *Client, name string) *Resource[T] {
	return &Resource[T]{client: c, prefix: "/" + name + "/" + name, deletePath: "/delete/%d"}
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	return list[T](ctx, r.client, r.prefix+"/all")
}

func (r *Resource[T]) Get(ctx context.Context, id int64) (*T, error) {
	body, err := r.client.DoRequest(ctx, http.MethodGet, fmt.Sprintf("%s/%d", r.prefix, id), nil)
	if err != nil {
		return nil, err
	}
	return decode[T](body)
}

func (r *Resource[T]) Create(ctx context.Context, item *T) (*T, error) {
	body, err := r.client.DoRequest(ctx, http.MethodPost, r.prefix+"/create", item)
	if err != nil {
		return nil, err
	}
	return decode[T](body)
}

func (r *Resource[T]) Update(ctx context.Context, id int64, changes interface{}) error {
	_, err := r.client.DoRequest(ctx, http.MethodPut, fmt.Sprintf("%s/update/%d", r.prefix, id), changes)
	return err
}

func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	_, err := r.client.DoRequest(ctx, http.MethodDelete, r.prefix+fmt.Sprintf(r.deletePath, id), nil)
	return err
}

func (c *Client) Customers() *Resource[Customer] { return NewResource[Customer](c, "clients") }
func (c *Client) Mileages() *Resource[Mileage] { return NewResource[Mileage](c, "milages") }
func (c *Client) Observations() *Resource[Observation] { return NewResource[Observation](c, "observations") }
func (c *Client) WorkshopReports() *Resource[WorkshopReport] { return NewResource[WorkshopReport](c, "workshop-reports") }
func (c *Client) Routes() *Resource[Route] { return NewResource[Route](c, "routes") }
func (c *Client) Addresses() *Resource[Address] { return NewResource[Address](c, "address") }
func (c *Client) Parts() *Resource[Part] { return NewResource[Part](c, "parts") }
func (c *Client) Shipments() *Resource[Shipment] { return NewResource[Shipment](c, "shipments") }
func (c *Client) Packages() *Resource[Package] { return NewResource[Package](c, "packages") }
func (c *Client) Products() *Resource[Product] { return NewResource[Product](c, "products") }
func (c *Client) Drivers() *Resource[Driver] { return NewResource[Driver](c, "drivers") }
func (c *Client) Users() *Resource[User] { return NewResource[User](c, "users") }
func (c *Client) Provinces() *Resource[Province] { return NewResource[Province](c, "provinces") }
func (c *Client) Vehicles() *Resource[Vehicle] { return NewResource[Vehicle](c, "vehicles") }

// ExitOrders deletes at /exit-orders/exit-orders/{id}, without the delete segment.
func (c *Client) ExitOrders() *Resource[ExitOrder] {
	r := NewResource[ExitOrder](c, "exit-orders")
	r.deletePath = "/%d"
	return r
}

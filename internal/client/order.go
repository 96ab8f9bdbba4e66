package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

type OrderGateway struct {
	c *Client
}

type ListOrdersOpts struct {
	Status  string
	UserID  string
	Page    int
	PerPage int
}

func (g *OrderGateway) ListOrders(ctx context.Context, opts ListOrdersOpts) ([]domain.Order, error) {
	q := url.Values{}
	setPage(q, opts.Page, opts.PerPage)
	setIfPresent(q, "status", opts.Status)
	setIfPresent(q, "user_id", opts.UserID)

	raw, err := g.c.request(ctx, http.MethodGet, "/orders", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Order](raw, "orders")
}

func (g *OrderGateway) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Order *domain.Order `json:"order"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.Order != nil {
		return envelope.Order, nil
	}
	var order domain.Order
	if err := decodeInto(raw, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

type CreateOrderInput struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
	Notes           string `json:"notes,omitempty"`
}

// CreateOrder checks out the current cart.
func (g *OrderGateway) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validate order input: %w", err)
	}
	raw, err := g.c.request(ctx, http.MethodPost, "/orders", nil, input)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Order *domain.Order `json:"order"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Order, nil
}

func (g *OrderGateway) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	body := map[string]string{"status": status}
	_, err := g.c.request(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/status", orderID), nil, body)
	return err
}

func (g *OrderGateway) CancelOrder(ctx context.Context, orderID int64) error {
	_, err := g.c.request(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/cancel", orderID), nil, nil)
	return err
}

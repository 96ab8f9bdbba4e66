package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

type StorageGateway struct {
	c *Client
}

type ListWarehousesOpts struct {
	Region     string
	ActiveOnly bool
	Page       int
	PerPage    int
}

func (g *StorageGateway) Warehouses(ctx context.Context, opts ListWarehousesOpts) ([]domain.Warehouse, error) {
	q := url.Values{}
	setPage(q, opts.Page, opts.PerPage)
	setIfPresent(q, "region", opts.Region)
	setBoolIfTrue(q, "active_only", opts.ActiveOnly)

	raw, err := g.c.request(ctx, http.MethodGet, "/storage/warehouses", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Warehouse](raw, "warehouses")
}

type WarehouseInput struct {
	Name        string  `json:"name" validate:"required"`
	Region      string  `json:"region" validate:"required"`
	Location    string  `json:"location,omitempty"`
	CapacityKg  float64 `json:"capacity_kg,omitempty"`
	AvailableKg float64 `json:"available_kg,omitempty"`
}

func (g *StorageGateway) CreateWarehouse(ctx context.Context, input WarehouseInput) (*domain.Warehouse, error) {
	if err := g.c.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validate warehouse input: %w", err)
	}
	raw, err := g.c.request(ctx, http.MethodPost, "/storage/warehouses", nil, input)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Warehouse *domain.Warehouse `json:"warehouse"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Warehouse, nil
}

func (g *StorageGateway) UpdateWarehouse(ctx context.Context, warehouseID int64, input WarehouseInput) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodPut, fmt.Sprintf("/storage/warehouses/%d", warehouseID), nil, input)
	return err
}

func (g *StorageGateway) DeleteWarehouse(ctx context.Context, warehouseID int64) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodDelete, fmt.Sprintf("/storage/warehouses/%d", warehouseID), nil, nil)
	return err
}

type StorageRequestInput struct {
	WarehouseID int64   `json:"warehouse_id" validate:"required"`
	Produce     string  `json:"produce" validate:"required"`
	QuantityKg  float64 `json:"quantity_kg" validate:"required,gt=0"`
}

func (g *StorageGateway) CreateRequest(ctx context.Context, input StorageRequestInput) (*domain.StorageRequest, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validate storage request: %w", err)
	}
	raw, err := g.c.request(ctx, http.MethodPost, "/storage/requests", nil, input)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Request *domain.StorageRequest `json:"request"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Request, nil
}

func (g *StorageGateway) Requests(ctx context.Context, status string) ([]domain.StorageRequest, error) {
	q := url.Values{}
	setIfPresent(q, "status", status)

	raw, err := g.c.request(ctx, http.MethodGet, "/storage/requests", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.StorageRequest](raw, "requests")
}

func (g *StorageGateway) UpdateRequestStatus(ctx context.Context, requestID int64, status string) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	body := map[string]string{"status": status}
	_, err := g.c.request(ctx, http.MethodPut, fmt.Sprintf("/storage/requests/%d/status", requestID), nil, body)
	return err
}

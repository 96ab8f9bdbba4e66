package client

import (
	"context"
	"net/http"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

type DashboardGateway struct {
	c *Client
}

func (g *DashboardGateway) UserOverview(ctx context.Context) (*domain.UserOverview, error) {
	raw, err := g.c.request(ctx, http.MethodGet, "/dashboard/user/overview", nil, nil)
	if err != nil {
		return nil, err
	}
	var overview domain.UserOverview
	if err := decodeInto(raw, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (g *DashboardGateway) AdminOverview(ctx context.Context) (*domain.AdminOverview, error) {
	if err := g.c.requireAdmin(); err != nil {
		return nil, err
	}
	raw, err := g.c.request(ctx, http.MethodGet, "/dashboard/admin/overview", nil, nil)
	if err != nil {
		return nil, err
	}
	var overview domain.AdminOverview
	if err := decodeInto(raw, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (g *DashboardGateway) Policies(ctx context.Context) ([]domain.Policy, error) {
	raw, err := g.c.request(ctx, http.MethodGet, "/dashboard/policies", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Policy](raw, "policies")
}

func (g *DashboardGateway) Features(ctx context.Context) ([]domain.Feature, error) {
	raw, err := g.c.request(ctx, http.MethodGet, "/dashboard/features", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Feature](raw, "features")
}

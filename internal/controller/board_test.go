package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

type stubDashboardAPI struct {
	user  domain.UserOverview
	admin domain.AdminOverview
	err   error
}

func (s *stubDashboardAPI) UserOverview(ctx context.Context) (*domain.UserOverview, error) {
	if s.err != nil {
		return nil, s.err
	}
	overview := s.user
	return &overview, nil
}

func (s *stubDashboardAPI) AdminOverview(ctx context.Context) (*domain.AdminOverview, error) {
	if s.err != nil {
		return nil, s.err
	}
	overview := s.admin
	return &overview, nil
}

func TestAdminHeadline(t *testing.T) {
	api := &stubDashboardAPI{admin: domain.AdminOverview{
		TotalUsers:       42,
		PendingApprovals: 3,
		PendingLoans:     2,
		ActiveSaccos:     5,
		OrdersToday:      7,
	}}
	ctrl := NewAdminBoard(api, time.Minute)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	headline := ctrl.Headline()
	if headline.Users != 42 || headline.PendingWork != 5 || headline.ActiveSaccos != 5 || headline.OrdersToday != 7 {
		t.Errorf("headline = %+v", headline)
	}
}

func TestFailedLoadClearsAdminOverview(t *testing.T) {
	api := &stubDashboardAPI{admin: domain.AdminOverview{TotalUsers: 42}}
	ctrl := NewAdminBoard(api, time.Minute)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if ctrl.Overview() == nil {
		t.Fatal("expected overview after load")
	}

	api.err = errors.New("backend down")
	if err := ctrl.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if ctrl.Phase() != PhaseError {
		t.Errorf("phase = %s, want error", ctrl.Phase())
	}
	if ctrl.Overview() != nil {
		t.Error("stale overview shown behind the error phase")
	}
	if headline := ctrl.Headline(); headline != (Headline{}) {
		t.Errorf("headline from stale overview: %+v", headline)
	}
}

func TestFailedLoadClearsUserOverview(t *testing.T) {
	api := &stubDashboardAPI{user: domain.UserOverview{ActivePosts: 2}}
	ctrl := NewUserBoard(api, time.Minute)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	api.err = errors.New("backend down")
	if err := ctrl.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if ctrl.Overview() != nil {
		t.Error("stale overview shown behind the error phase")
	}
}

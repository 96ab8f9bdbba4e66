package controller

import (
	"context"
	"time"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/logger"
)

// DashboardAPI is the gateway surface the board controllers consume.
// Satisfied by *client.DashboardGateway.
type DashboardAPI interface {
	UserOverview(ctx context.Context) (*domain.UserOverview, error)
	AdminOverview(ctx context.Context) (*domain.AdminOverview, error)
}

// UserBoardController owns the member dashboard overview.
type UserBoardController struct {
	state
	api      DashboardAPI
	interval time.Duration

	overview *domain.UserOverview

	poll *poller
}

func NewUserBoard(api DashboardAPI, pollInterval time.Duration) *UserBoardController {
	return &UserBoardController{api: api, interval: pollInterval}
}

func (c *UserBoardController) Load(ctx context.Context) error {
	gen := c.begin()

	overview, err := c.api.UserOverview(ctx)

	c.mu.Lock()
	if c.gen == gen {
		if err != nil {
			c.overview = nil
		} else {
			c.overview = overview
		}
	}
	c.mu.Unlock()

	if !c.finish(gen, err) {
		return nil
	}
	return err
}

func (c *UserBoardController) StartPolling(ctx context.Context) {
	if c.poll != nil {
		return
	}
	c.poll = startPoller(ctx, c.interval, func(ctx context.Context) {
		if err := c.Load(ctx); err != nil {
			logger.Warnf(ctx, "user board poll: %s", err.Error())
		}
	})
}

func (c *UserBoardController) Close() {
	if c.poll != nil {
		c.poll.stop()
		c.poll = nil
	}
}

func (c *UserBoardController) Overview() *domain.UserOverview {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.overview
}

// AdminBoardController owns the admin dashboard overview and the headline
// numbers derived from it.
type AdminBoardController struct {
	state
	api      DashboardAPI
	interval time.Duration

	overview *domain.AdminOverview

	poll *poller
}

func NewAdminBoard(api DashboardAPI, pollInterval time.Duration) *AdminBoardController {
	return &AdminBoardController{api: api, interval: pollInterval}
}

func (c *AdminBoardController) Load(ctx context.Context) error {
	gen := c.begin()

	overview, err := c.api.AdminOverview(ctx)

	c.mu.Lock()
	if c.gen == gen {
		if err != nil {
			c.overview = nil
		} else {
			c.overview = overview
		}
	}
	c.mu.Unlock()

	if !c.finish(gen, err) {
		return nil
	}
	return err
}

func (c *AdminBoardController) StartPolling(ctx context.Context) {
	if c.poll != nil {
		return
	}
	c.poll = startPoller(ctx, c.interval, func(ctx context.Context) {
		if err := c.Load(ctx); err != nil {
			logger.Warnf(ctx, "admin board poll: %s", err.Error())
		}
	})
}

func (c *AdminBoardController) Close() {
	if c.poll != nil {
		c.poll.stop()
		c.poll = nil
	}
}

func (c *AdminBoardController) Overview() *domain.AdminOverview {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.overview
}

// Headline is the condensed stat row at the top of the admin board.
type Headline struct {
	Users        int
	PendingWork  int
	ActiveSaccos int
	OrdersToday  int
}

// Headline folds the overview into the four numbers the board leads with.
// PendingWork combines post approvals and loan reviews.
func (c *AdminBoardController) Headline() Headline {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.overview == nil {
		return Headline{}
	}
	return Headline{
		Users:        c.overview.TotalUsers,
		PendingWork:  c.overview.PendingApprovals + c.overview.PendingLoans,
		ActiveSaccos: c.overview.ActiveSaccos,
		OrdersToday:  c.overview.OrdersToday,
	}
}

package controller

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shamsy-hassan/FSH-sub001/internal/client"
	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/logger"
)

// SaccoAPI is the gateway surface the sacco controller consumes. Satisfied by
// *client.SaccoGateway.
type SaccoAPI interface {
	ListSaccos(ctx context.Context, opts client.ListSaccosOpts) ([]domain.Sacco, error)
	CreateSacco(ctx context.Context, input client.SaccoInput) (*domain.Sacco, error)
	UpdateSacco(ctx context.Context, saccoID int64, input client.SaccoInput) error
	DeactivateSacco(ctx context.Context, saccoID int64) error
	LoanApplications(ctx context.Context, saccoID int64, opts client.LoanApplicationsOpts) ([]domain.LoanApplication, error)
	UpdateLoanStatus(ctx context.Context, applicationID int64, from, to string) error
}

// SaccoController owns the cooperative directory view plus per-sacco loan
// application management.
type SaccoController struct {
	state
	api      SaccoAPI
	interval time.Duration

	region string

	saccos []domain.Sacco

	// loan applications for the currently opened sacco
	loanSacco    int64
	loanStatus   string
	applications []domain.LoanApplication

	poll *poller
}

func NewSacco(api SaccoAPI, pollInterval time.Duration) *SaccoController {
	return &SaccoController{api: api, interval: pollInterval, loanStatus: StatusAll}
}

func (c *SaccoController) Load(ctx context.Context) error {
	gen := c.begin()

	c.mu.RLock()
	opts := client.ListSaccosOpts{Region: c.region}
	c.mu.RUnlock()

	saccos, err := c.api.ListSaccos(ctx, opts)

	c.mu.Lock()
	if c.gen == gen {
		if err != nil {
			c.saccos = nil
		} else {
			c.saccos = saccos
		}
	}
	c.mu.Unlock()

	if !c.finish(gen, err) {
		return nil
	}
	return err
}

func (c *SaccoController) StartPolling(ctx context.Context) {
	if c.poll != nil {
		return
	}
	c.poll = startPoller(ctx, c.interval, func(ctx context.Context) {
		if err := c.Load(ctx); err != nil {
			logger.Warnf(ctx, "sacco poll: %s", err.Error())
		}
	})
}

func (c *SaccoController) Close() {
	if c.poll != nil {
		c.poll.stop()
		c.poll = nil
	}
}

func (c *SaccoController) SetRegion(region string) {
	c.mu.Lock()
	c.region = region
	c.mu.Unlock()
}

func (c *SaccoController) Saccos() []domain.Sacco {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Sacco, len(c.saccos))
	copy(out, c.saccos)
	return out
}

func (c *SaccoController) Create(ctx context.Context, input client.SaccoInput) error {
	if _, err := c.api.CreateSacco(ctx, input); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *SaccoController) Update(ctx context.Context, saccoID int64, input client.SaccoInput) error {
	if err := c.api.UpdateSacco(ctx, saccoID, input); err != nil {
		return err
	}
	return c.Load(ctx)
}

// Deactivate is irreversible; there is no reactivate call.
func (c *SaccoController) Deactivate(ctx context.Context, saccoID int64) error {
	if err := c.api.DeactivateSacco(ctx, saccoID); err != nil {
		return err
	}
	return c.Load(ctx)
}

// OpenLoanApplications fetches the applications of one sacco, filtered by
// status when the filter is not the All sentinel, newest first.
func (c *SaccoController) OpenLoanApplications(ctx context.Context, saccoID int64) error {
	c.mu.RLock()
	status := c.loanStatus
	c.mu.RUnlock()

	opts := client.LoanApplicationsOpts{}
	if status != StatusAll {
		opts.Status = status
	}
	applications, err := c.api.LoanApplications(ctx, saccoID, opts)
	if err != nil {
		return err
	}
	sort.SliceStable(applications, func(i, j int) bool {
		return applications[i].ApplicationDate.After(applications[j].ApplicationDate.Time)
	})

	c.mu.Lock()
	c.loanSacco = saccoID
	c.applications = applications
	c.mu.Unlock()
	return nil
}

func (c *SaccoController) SetLoanStatusFilter(status string) {
	c.mu.Lock()
	c.loanStatus = status
	c.mu.Unlock()
}

func (c *SaccoController) LoanApplications() []domain.LoanApplication {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.LoanApplication, len(c.applications))
	copy(out, c.applications)
	return out
}

// UpdateLoanStatus guards the transition against the application's current
// status before calling out, then refreshes the open list.
func (c *SaccoController) UpdateLoanStatus(ctx context.Context, applicationID int64, to string) error {
	c.mu.RLock()
	from := ""
	for _, app := range c.applications {
		if app.ID == applicationID {
			from = app.Status
			break
		}
	}
	saccoID := c.loanSacco
	c.mu.RUnlock()

	if from == "" {
		return fmt.Errorf("loan application %d not loaded", applicationID)
	}
	if !domain.LoanStatusTransitionAllowed(from, to) {
		return fmt.Errorf("loan status %s cannot move to %s", from, to)
	}
	if err := c.api.UpdateLoanStatus(ctx, applicationID, from, to); err != nil {
		return err
	}
	return c.OpenLoanApplications(ctx, saccoID)
}

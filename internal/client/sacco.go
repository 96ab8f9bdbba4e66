package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

type SaccoGateway struct {
	c *Client
}

type ListSaccosOpts struct {
	Region     string
	ActiveOnly bool
	Page       int
	PerPage    int
}

func (g *SaccoGateway) ListSaccos(ctx context.Context, opts ListSaccosOpts) ([]domain.Sacco, error) {
	q := url.Values{}
	setPage(q, opts.Page, opts.PerPage)
	setIfPresent(q, "region", opts.Region)
	setBoolIfTrue(q, "active_only", opts.ActiveOnly)

	raw, err := g.c.request(ctx, http.MethodGet, "/sacco/saccos", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Sacco](raw, "saccos")
}

func (g *SaccoGateway) GetSacco(ctx context.Context, saccoID int64) (*domain.Sacco, error) {
	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/sacco/saccos/%d", saccoID), nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Sacco *domain.Sacco `json:"sacco"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.Sacco != nil {
		return envelope.Sacco, nil
	}
	var sacco domain.Sacco
	if err := decodeInto(raw, &sacco); err != nil {
		return nil, err
	}
	return &sacco, nil
}

type SaccoInput struct {
	Name               string `validate:"required"`
	Description        string
	RegistrationNumber string `validate:"required"`
	Location           string
	Region             string `validate:"required"`
	FoundedDate        string
	ContactEmail       string `validate:"omitempty,email"`
	ContactPhone       string
	Logo               []byte
	LogoFilename       string
}

func (i SaccoInput) form() *Form {
	form := NewForm().
		Set("name", i.Name).
		Set("registration_number", i.RegistrationNumber).
		SetIfPresent("description", i.Description).
		SetIfPresent("location", i.Location).
		SetIfPresent("region", i.Region).
		SetIfPresent("founded_date", i.FoundedDate).
		SetIfPresent("contact_email", i.ContactEmail).
		SetIfPresent("contact_phone", i.ContactPhone)
	if len(i.Logo) > 0 {
		form.AddFile("logo", i.LogoFilename, i.Logo)
	}
	return form
}

// CreateSacco is admin-only and always multipart so an optional logo rides the
// same payload.
func (g *SaccoGateway) CreateSacco(ctx context.Context, input SaccoInput) (*domain.Sacco, error) {
	if err := g.c.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validate sacco input: %w", err)
	}

	raw, err := g.c.requestMultipart(ctx, http.MethodPost, "/sacco/saccos", input.form())
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Sacco *domain.Sacco `json:"sacco"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Sacco, nil
}

func (g *SaccoGateway) UpdateSacco(ctx context.Context, saccoID int64, input SaccoInput) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.requestMultipart(ctx, http.MethodPut, fmt.Sprintf("/sacco/saccos/%d", saccoID), input.form())
	return err
}

func (g *SaccoGateway) DeleteSacco(ctx context.Context, saccoID int64) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodDelete, fmt.Sprintf("/sacco/saccos/%d", saccoID), nil, nil)
	return err
}

// DeactivateSacco is irreversible on the backend.
func (g *SaccoGateway) DeactivateSacco(ctx context.Context, saccoID int64) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodPost, fmt.Sprintf("/sacco/saccos/%d/deactivate", saccoID), nil, nil)
	return err
}

func (g *SaccoGateway) JoinSacco(ctx context.Context, saccoID int64, membershipType string) error {
	body := map[string]string{}
	if membershipType != "" {
		body["membership_type"] = membershipType
	}
	_, err := g.c.request(ctx, http.MethodPost, fmt.Sprintf("/sacco/saccos/%d/join", saccoID), nil, body)
	return err
}

// Memberships lists the current user's sacco memberships.
func (g *SaccoGateway) Memberships(ctx context.Context) ([]domain.Membership, error) {
	raw, err := g.c.request(ctx, http.MethodGet, "/sacco/memberships", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Membership](raw, "memberships")
}

func (g *SaccoGateway) Members(ctx context.Context, saccoID int64) ([]domain.Membership, error) {
	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/sacco/saccos/%d/members", saccoID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Membership](raw, "members")
}

func (g *SaccoGateway) ListLoans(ctx context.Context, saccoID int64) ([]domain.Loan, error) {
	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/sacco/saccos/%d/loans", saccoID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Loan](raw, "loans")
}

type LoanApplicationInput struct {
	LoanID     int64   `json:"loan_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Purpose    string  `json:"purpose" validate:"required"`
	Period     int     `json:"period,omitempty"`
	Collateral string  `json:"collateral,omitempty"`
}

func (g *SaccoGateway) ApplyForLoan(ctx context.Context, saccoID int64, input LoanApplicationInput) (*domain.LoanApplication, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validate loan application: %w", err)
	}
	raw, err := g.c.request(ctx, http.MethodPost, fmt.Sprintf("/sacco/saccos/%d/loan-applications", saccoID), nil, input)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Application *domain.LoanApplication `json:"application"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Application, nil
}

type LoanApplicationsOpts struct {
	Status  string
	Page    int
	PerPage int
}

func (g *SaccoGateway) LoanApplications(ctx context.Context, saccoID int64, opts LoanApplicationsOpts) ([]domain.LoanApplication, error) {
	q := url.Values{}
	setPage(q, opts.Page, opts.PerPage)
	setIfPresent(q, "status", opts.Status)

	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/sacco/saccos/%d/loan-applications", saccoID), q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.LoanApplication](raw, "applications")
}

// UpdateLoanStatus rejects illegal transitions before touching the network so
// a disbursed or rejected application can never be resurrected from the client.
func (g *SaccoGateway) UpdateLoanStatus(ctx context.Context, applicationID int64, from, to string) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	if !domain.LoanStatusTransitionAllowed(from, to) {
		return fmt.Errorf("loan status %s cannot move to %s", from, to)
	}
	body := map[string]string{"status": to}
	_, err := g.c.request(ctx, http.MethodPut, fmt.Sprintf("/sacco/loan-applications/%d/status", applicationID), nil, body)
	return err
}

func (g *SaccoGateway) ProcessDeposit(ctx context.Context, membershipID int64, amount float64) error {
	body := map[string]interface{}{"amount": amount}
	_, err := g.c.request(ctx, http.MethodPost, fmt.Sprintf("/sacco/memberships/%d/deposit", membershipID), nil, body)
	return err
}

// SavingsTransaction records a deposit or withdrawal against a membership.
func (g *SaccoGateway) SavingsTransaction(ctx context.Context, membershipID int64, kind string, amount float64) error {
	body := map[string]interface{}{
		"type":   kind,
		"amount": amount,
	}
	_, err := g.c.request(ctx, http.MethodPost, fmt.Sprintf("/sacco/memberships/%d/transactions", membershipID), nil, body)
	return err
}

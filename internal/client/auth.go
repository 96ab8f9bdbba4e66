package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/logger"
)

// AuthGateway is the only gateway that mutates session state: login and
// refresh write the token, logout and failed refresh clear it.
type AuthGateway struct {
	c *Client
}

type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Region   string `json:"region,omitempty"`
	UserType string `json:"user_type,omitempty"`
}

type LoginResponse struct {
	Success     bool         `json:"success"`
	AccessToken string       `json:"access_token"`
	Type        string       `json:"type"`
	User        *domain.User `json:"user,omitempty"`
	Admin       *domain.User `json:"admin,omitempty"`
}

// Account returns whichever identity the backend populated.
func (r *LoginResponse) Account() *domain.User {
	if r.Admin != nil {
		return r.Admin
	}
	return r.User
}

func (g *AuthGateway) Register(ctx context.Context, input RegisterInput) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("validate register input: %w", err)
	}
	_, err := g.c.request(ctx, http.MethodPost, "/auth/register", nil, input)
	return err
}

func (g *AuthGateway) Login(ctx context.Context, username, password, userType string) (*LoginResponse, error) {
	body := map[string]string{
		"username":  username,
		"password":  password,
		"user_type": userType,
	}
	raw, err := g.c.request(ctx, http.MethodPost, "/auth/login", nil, body)
	if err != nil {
		return nil, err
	}

	var resp LoginResponse
	if err := decodeInto(raw, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		account := resp.Account()
		userID := ""
		if account != nil {
			userID = fmt.Sprintf("%d", account.ID)
		}
		if err := g.c.session.Set(resp.AccessToken, userID, resp.Type); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
	}
	return &resp, nil
}

// AdminLogin is Login with the admin actor type.
func (g *AuthGateway) AdminLogin(ctx context.Context, username, password string) (*LoginResponse, error) {
	return g.Login(ctx, username, password, constants.UserTypeAdmin)
}

type ProfileResponse struct {
	Type  string       `json:"type"`
	User  *domain.User `json:"user,omitempty"`
	Admin *domain.User `json:"admin,omitempty"`
}

func (r *ProfileResponse) Account() *domain.User {
	if r.Admin != nil {
		return r.Admin
	}
	return r.User
}

func (g *AuthGateway) Profile(ctx context.Context) (*ProfileResponse, error) {
	raw, err := g.c.request(ctx, http.MethodGet, "/auth/profile", nil, nil)
	if err != nil {
		return nil, err
	}
	var resp ProfileResponse
	if err := decodeInto(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout tells the backend and clears the persisted session either way.
func (g *AuthGateway) Logout(ctx context.Context) error {
	_, reqErr := g.c.request(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if err := g.c.session.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return reqErr
}

// Refresh exchanges the current token for a fresh one. A failed refresh
// invalidates the session, matching the original client's behavior.
func (g *AuthGateway) Refresh(ctx context.Context) (bool, error) {
	raw, err := g.c.request(ctx, http.MethodPost, "/auth/refresh", nil, nil)
	if err != nil {
		if clearErr := g.c.session.Clear(); clearErr != nil {
			logger.Errorf(ctx, "clear session after failed refresh: %s", clearErr.Error())
		}
		return false, err
	}

	var resp LoginResponse
	if err := decodeInto(raw, &resp); err != nil {
		return false, err
	}
	if resp.AccessToken == "" {
		return false, nil
	}
	if err := g.c.session.SetToken(resp.AccessToken); err != nil {
		return false, fmt.Errorf("persist refreshed token: %w", err)
	}
	return true, nil
}

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

type UserGateway struct {
	c *Client
}

func (g *UserGateway) SearchUsers(ctx context.Context, query string, page, perPage int) ([]domain.User, error) {
	q := url.Values{}
	setPage(q, page, perPage)
	setIfPresent(q, "q", query)

	raw, err := g.c.request(ctx, http.MethodGet, "/users/search", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.User](raw, "users")
}

func (g *UserGateway) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/users/%d", userID), nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		User *domain.User `json:"user"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.User != nil {
		return envelope.User, nil
	}
	var user domain.User
	if err := decodeInto(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type UpdateProfileInput struct {
	FullName string
	Phone    string
	Address  string
	Bio      string
	Region   string
	Picture  []byte
	Filename string
}

// UpdateProfile is JSON for field-only edits and multipart when a picture is
// attached, matching how the backend reads the two payloads.
func (g *UserGateway) UpdateProfile(ctx context.Context, input UpdateProfileInput) error {
	if len(input.Picture) > 0 {
		form := NewForm().
			SetIfPresent("full_name", input.FullName).
			SetIfPresent("phone", input.Phone).
			SetIfPresent("address", input.Address).
			SetIfPresent("bio", input.Bio).
			SetIfPresent("region", input.Region).
			AddFile("picture", input.Filename, input.Picture)
		_, err := g.c.requestMultipart(ctx, http.MethodPut, "/users/profile", form)
		return err
	}

	body := map[string]string{}
	for key, value := range map[string]string{
		"full_name": input.FullName,
		"phone":     input.Phone,
		"address":   input.Address,
		"bio":       input.Bio,
		"region":    input.Region,
	} {
		if value != "" {
			body[key] = value
		}
	}
	_, err := g.c.request(ctx, http.MethodPut, "/users/profile", nil, body)
	return err
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

func (g *UserGateway) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("validate password input: %w", err)
	}
	_, err := g.c.request(ctx, http.MethodPost, "/users/change-password", nil, input)
	return err
}

func (g *UserGateway) DeleteProfilePicture(ctx context.Context) error {
	_, err := g.c.request(ctx, http.MethodDelete, "/users/profile/picture", nil, nil)
	return err
}

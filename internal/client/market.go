package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
)

// MarketGateway covers marketplace posts, interests and needs, including the
// legacy aliases the original client exposed. Each alias is a pure parameter
// translation onto a canonical operation.
type MarketGateway struct {
	c *Client
}

type ListPostsOpts struct {
	Category     string
	Region       string
	Type         string
	Status       string
	UserType     string
	UserID       string
	ApprovedOnly bool
	Page         int
	PerPage      int
}

func (o ListPostsOpts) query() url.Values {
	q := url.Values{}
	setPage(q, o.Page, o.PerPage)
	setIfPresent(q, "category", o.Category)
	setIfPresent(q, "region", o.Region)
	setIfPresent(q, "type", o.Type)
	setIfPresent(q, "status", o.Status)
	setIfPresent(q, "user_type", o.UserType)
	setIfPresent(q, "user_id", o.UserID)
	setBoolIfTrue(q, "approved_only", o.ApprovedOnly)
	return q
}

func (g *MarketGateway) ListPosts(ctx context.Context, opts ListPostsOpts) ([]domain.MarketPost, error) {
	raw, err := g.c.request(ctx, http.MethodGet, "/market/posts", opts.query(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.MarketPost](raw, "posts")
}

func (g *MarketGateway) GetPost(ctx context.Context, postID int64) (*domain.MarketPost, error) {
	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/market/posts/%d", postID), nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Post *domain.MarketPost `json:"post"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.Post != nil {
		return envelope.Post, nil
	}
	var post domain.MarketPost
	if err := decodeInto(raw, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

type CreatePostInput struct {
	Title       string  `validate:"required"`
	Description string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Quantity    float64 `validate:"gte=0"`
	Unit        string
	Category    string
	Location    string
	Region      string
	Type        string
	Status      string
	Priority    string
}

type PostImage struct {
	Filename string
	Content  []byte
}

// CreatePost is always multipart: the backend reads form fields and optional
// image parts from the same payload.
func (g *MarketGateway) CreatePost(ctx context.Context, input CreatePostInput, images []PostImage) (*domain.MarketPost, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validate post input: %w", err)
	}

	form := NewForm().
		Set("title", input.Title).
		Set("description", input.Description).
		Set("price", fmt.Sprintf("%g", input.Price)).
		Set("quantity", fmt.Sprintf("%g", input.Quantity)).
		SetIfPresent("unit", input.Unit).
		SetIfPresent("category", input.Category).
		SetIfPresent("location", input.Location).
		SetIfPresent("region", input.Region).
		SetIfPresent("type", input.Type).
		SetIfPresent("status", input.Status).
		SetIfPresent("priority", input.Priority)
	for _, img := range images {
		form.AddFile("images", img.Filename, img.Content)
	}

	raw, err := g.c.requestMultipart(ctx, http.MethodPost, "/market/posts", form)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Post *domain.MarketPost `json:"post"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Post, nil
}

// UpdatePost sends a partial update; only the provided fields change.
func (g *MarketGateway) UpdatePost(ctx context.Context, postID int64, fields map[string]interface{}) error {
	_, err := g.c.request(ctx, http.MethodPut, fmt.Sprintf("/market/posts/%d", postID), nil, fields)
	return err
}

func (g *MarketGateway) DeletePost(ctx context.Context, postID int64) error {
	_, err := g.c.request(ctx, http.MethodDelete, fmt.Sprintf("/market/posts/%d", postID), nil, nil)
	return err
}

// UserPosts lists the current session's posts.
func (g *MarketGateway) UserPosts(ctx context.Context, page, perPage int) ([]domain.MarketPost, error) {
	userID := g.c.session.UserID()
	if userID == "" {
		return nil, fmt.Errorf("user posts: %w", constants.ErrSessionMissing)
	}
	return g.ListPosts(ctx, ListPostsOpts{UserID: userID, Page: page, PerPage: perPage})
}

func (g *MarketGateway) ApprovePost(ctx context.Context, postID int64) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodPost, fmt.Sprintf("/market/posts/%d/approve", postID), nil, nil)
	return err
}

// RejectPost is the legacy alias for updating a post's status to rejected.
func (g *MarketGateway) RejectPost(ctx context.Context, postID int64) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	return g.UpdatePost(ctx, postID, map[string]interface{}{"status": domain.PostStatusRejected})
}

func (g *MarketGateway) ExpressInterest(ctx context.Context, postID int64, message string) error {
	body := map[string]string{"message": message}
	_, err := g.c.request(ctx, http.MethodPost, fmt.Sprintf("/market/posts/%d/interest", postID), nil, body)
	return err
}

// RequestPurchase is the legacy alias for ExpressInterest.
func (g *MarketGateway) RequestPurchase(ctx context.Context, postID int64, message string) error {
	return g.ExpressInterest(ctx, postID, message)
}

func (g *MarketGateway) PostInterests(ctx context.Context, postID int64) ([]domain.Interest, error) {
	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/market/posts/%d/interests", postID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Interest](raw, "interests")
}

func (g *MarketGateway) AcceptInterest(ctx context.Context, interestID int64) error {
	_, err := g.c.request(ctx, http.MethodPost, fmt.Sprintf("/market/interests/%d/accept", interestID), nil, nil)
	return err
}

func (g *MarketGateway) Stats(ctx context.Context) (*domain.MarketStats, error) {
	raw, err := g.c.request(ctx, http.MethodGet, "/market/stats", nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Stats *domain.MarketStats `json:"stats"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.Stats != nil {
		return envelope.Stats, nil
	}
	var stats domain.MarketStats
	if err := decodeInto(raw, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

type ListNeedsOpts struct {
	Category string
	Region   string
	Status   string
	Priority string
	Page     int
	PerPage  int
}

// ListNeeds returns admin-authored demand listings. Status defaults to active
// on the backend; it is still forwarded explicitly when set.
func (g *MarketGateway) ListNeeds(ctx context.Context, opts ListNeedsOpts) ([]domain.MarketPost, error) {
	q := url.Values{}
	setPage(q, opts.Page, opts.PerPage)
	setIfPresent(q, "category", opts.Category)
	setIfPresent(q, "region", opts.Region)
	setIfPresent(q, "status", opts.Status)
	setIfPresent(q, "priority", opts.Priority)

	raw, err := g.c.request(ctx, http.MethodGet, "/market/needs", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.MarketPost](raw, "needs")
}

// GetNeeds is the legacy alias for listing posts of type need.
func (g *MarketGateway) GetNeeds(ctx context.Context) ([]domain.MarketPost, error) {
	return g.ListPosts(ctx, ListPostsOpts{Type: domain.PostTypeNeed})
}

// GetDeals is the legacy alias for closed needs.
func (g *MarketGateway) GetDeals(ctx context.Context) ([]domain.MarketPost, error) {
	return g.ListPosts(ctx, ListPostsOpts{Type: domain.PostTypeNeed, Status: domain.PostStatusClosed})
}

// CreateNeed creates an admin demand listing: a post of type need, no images.
func (g *MarketGateway) CreateNeed(ctx context.Context, input CreatePostInput) (*domain.MarketPost, error) {
	if err := g.c.requireAdmin(); err != nil {
		return nil, err
	}
	input.Type = domain.PostTypeNeed
	return g.CreatePost(ctx, input, nil)
}

func (g *MarketGateway) UpdateNeed(ctx context.Context, needID int64, fields map[string]interface{}) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	return g.UpdatePost(ctx, needID, fields)
}

func (g *MarketGateway) DeleteNeed(ctx context.Context, needID int64) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	return g.DeletePost(ctx, needID)
}

// AcceptNeed closes a need in favor of a fulfilling user.
func (g *MarketGateway) AcceptNeed(ctx context.Context, needID int64, userID string) error {
	return g.UpdatePost(ctx, needID, map[string]interface{}{
		"accepted_by": userID,
		"status":      domain.PostStatusClosed,
	})
}

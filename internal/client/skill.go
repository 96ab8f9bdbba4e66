package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

type SkillGateway struct {
	c *Client
}

func (g *SkillGateway) Categories(ctx context.Context) ([]domain.SkillCategory, error) {
	raw, err := g.c.request(ctx, http.MethodGet, "/skills/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.SkillCategory](raw, "categories")
}

type ListSkillsOpts struct {
	CategoryID int64
	Search     string
	Page       int
	PerPage    int
}

func (g *SkillGateway) Skills(ctx context.Context, opts ListSkillsOpts) ([]domain.Skill, error) {
	q := url.Values{}
	setPage(q, opts.Page, opts.PerPage)
	setInt64IfPresent(q, "category_id", opts.CategoryID)
	setIfPresent(q, "search", opts.Search)

	raw, err := g.c.request(ctx, http.MethodGet, "/skills", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Skill](raw, "skills")
}

func (g *SkillGateway) GetSkill(ctx context.Context, skillID int64) (*domain.Skill, error) {
	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/skills/%d", skillID), nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Skill *domain.Skill `json:"skill"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.Skill != nil {
		return envelope.Skill, nil
	}
	var skill domain.Skill
	if err := decodeInto(raw, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

type SkillInput struct {
	CategoryID  int64  `json:"category_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
}

func (g *SkillGateway) CreateSkill(ctx context.Context, input SkillInput) (*domain.Skill, error) {
	if err := g.c.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validate skill input: %w", err)
	}
	raw, err := g.c.request(ctx, http.MethodPost, "/skills", nil, input)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Skill *domain.Skill `json:"skill"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Skill, nil
}

func (g *SkillGateway) UpdateSkill(ctx context.Context, skillID int64, input SkillInput) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodPut, fmt.Sprintf("/skills/%d", skillID), nil, input)
	return err
}

func (g *SkillGateway) DeleteSkill(ctx context.Context, skillID int64) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodDelete, fmt.Sprintf("/skills/%d", skillID), nil, nil)
	return err
}

func (g *SkillGateway) AddVideo(ctx context.Context, skillID int64, title, videoURL string) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	body := map[string]string{
		"title":     title,
		"video_url": videoURL,
	}
	_, err := g.c.request(ctx, http.MethodPost, fmt.Sprintf("/skills/%d/videos", skillID), nil, body)
	return err
}

func (g *SkillGateway) DeleteVideo(ctx context.Context, videoID int64) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodDelete, fmt.Sprintf("/skills/videos/%d", videoID), nil, nil)
	return err
}

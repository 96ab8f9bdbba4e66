package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

type AgroClimateGateway struct {
	c *Client
}

func (g *AgroClimateGateway) ListRegions(ctx context.Context) ([]domain.Region, error) {
	raw, err := g.c.request(ctx, http.MethodGet, "/agroclimate/regions", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Region](raw, "regions")
}

func (g *AgroClimateGateway) GetRegion(ctx context.Context, regionID int64) (*domain.Region, error) {
	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/agroclimate/regions/%d", regionID), nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Region *domain.Region `json:"region"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.Region != nil {
		return envelope.Region, nil
	}
	var region domain.Region
	if err := decodeInto(raw, &region); err != nil {
		return nil, err
	}
	return &region, nil
}

type RegionInput struct {
	Name            string  `json:"name" validate:"required"`
	Latitude        float64 `json:"latitude,omitempty"`
	Longitude       float64 `json:"longitude,omitempty"`
	Altitude        float64 `json:"altitude,omitempty"`
	SoilType        string  `json:"soil_type,omitempty"`
	AverageRainfall float64 `json:"average_rainfall,omitempty"`
	Description     string  `json:"description,omitempty"`
}

func (g *AgroClimateGateway) CreateRegion(ctx context.Context, input RegionInput) (*domain.Region, error) {
	if err := g.c.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validate region input: %w", err)
	}
	raw, err := g.c.request(ctx, http.MethodPost, "/agroclimate/regions", nil, input)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Region *domain.Region `json:"region"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Region, nil
}

func (g *AgroClimateGateway) UpdateRegion(ctx context.Context, regionID int64, input RegionInput) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodPut, fmt.Sprintf("/agroclimate/regions/%d", regionID), nil, input)
	return err
}

func (g *AgroClimateGateway) DeleteRegion(ctx context.Context, regionID int64) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodDelete, fmt.Sprintf("/agroclimate/regions/%d", regionID), nil, nil)
	return err
}

// Weather is returned as a direct object, not a list envelope.
func (g *AgroClimateGateway) Weather(ctx context.Context, regionID int64) (*domain.WeatherSnapshot, error) {
	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/agroclimate/regions/%d/weather", regionID), nil, nil)
	if err != nil {
		return nil, err
	}
	var snapshot domain.WeatherSnapshot
	if err := decodeInto(raw, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// CropRecommendations lists recommendations for one region, optionally
// narrowed to a season.
func (g *AgroClimateGateway) CropRecommendations(ctx context.Context, regionID int64, season string) ([]domain.CropRecommendation, error) {
	q := url.Values{}
	setIfPresent(q, "season", season)

	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/agroclimate/regions/%d/recommendations", regionID), q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.CropRecommendation](raw, "recommendations")
}

func (g *AgroClimateGateway) AllCropRecommendations(ctx context.Context) ([]domain.CropRecommendation, error) {
	raw, err := g.c.request(ctx, http.MethodGet, "/agroclimate/recommendations", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.CropRecommendation](raw, "recommendations")
}

type CropRecommendationInput struct {
	RegionID          int64  `json:"region_id" validate:"required"`
	CropName          string `json:"crop_name" validate:"required"`
	Season            string `json:"season" validate:"required"`
	PlantingMonth     string `json:"planting_month,omitempty"`
	HarvestingMonth   string `json:"harvesting_month,omitempty"`
	ExpectedYield     string `json:"expected_yield,omitempty"`
	WaterRequirements string `json:"water_requirements,omitempty"`
	SoilRequirements  string `json:"soil_requirements,omitempty"`
	Description       string `json:"description,omitempty"`
}

func (g *AgroClimateGateway) CreateCropRecommendation(ctx context.Context, input CropRecommendationInput) (*domain.CropRecommendation, error) {
	if err := g.c.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validate recommendation input: %w", err)
	}
	raw, err := g.c.request(ctx, http.MethodPost, "/agroclimate/recommendations", nil, input)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Recommendation *domain.CropRecommendation `json:"recommendation"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Recommendation, nil
}

func (g *AgroClimateGateway) UpdateCropRecommendation(ctx context.Context, recommendationID int64, input CropRecommendationInput) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodPut, fmt.Sprintf("/agroclimate/recommendations/%d", recommendationID), nil, input)
	return err
}

func (g *AgroClimateGateway) DeleteCropRecommendation(ctx context.Context, recommendationID int64) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodDelete, fmt.Sprintf("/agroclimate/recommendations/%d", recommendationID), nil, nil)
	return err
}

func (g *AgroClimateGateway) SeasonalAdvice(ctx context.Context, regionID int64, month int) (*domain.SeasonalAdvice, error) {
	q := url.Values{}
	setIntIfPresent(q, "month", month)

	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/agroclimate/regions/%d/advice", regionID), q, nil)
	if err != nil {
		return nil, err
	}
	var advice domain.SeasonalAdvice
	if err := decodeInto(raw, &advice); err != nil {
		return nil, err
	}
	return &advice, nil
}

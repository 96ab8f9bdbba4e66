package mockapi

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
)

func (svc *Server) listRegions(ctx echo.Context) error {
	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	regions := make([]domain.Region, 0, len(svc.store.regions))
	for _, region := range svc.store.regions {
		regions = append(regions, *region)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].ID < regions[j].ID })

	return ctx.JSON(http.StatusOK, echo.Map{"regions": regions})
}

type regionRequest struct {
	Name            string  `json:"name" validate:"required"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Altitude        float64 `json:"altitude"`
	SoilType        string  `json:"soil_type"`
	AverageRainfall float64 `json:"average_rainfall"`
	Description     string  `json:"description"`
}

func (svc *Server) createRegion(ctx echo.Context) error {
	var req regionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	svc.store.mu.Lock()
	region := &domain.Region{
		ID:              svc.store.id(),
		Name:            req.Name,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Altitude:        req.Altitude,
		SoilType:        req.SoilType,
		AverageRainfall: req.AverageRainfall,
		Description:     req.Description,
	}
	svc.store.regions[region.ID] = region
	svc.store.mu.Unlock()

	return ctx.JSON(http.StatusCreated, echo.Map{"region": region})
}

// regionWeather returns the snapshot directly, not wrapped in an envelope.
func (svc *Server) regionWeather(ctx echo.Context) error {
	svc.store.mu.RLock()
	snapshot := svc.store.weather[pathID(ctx)]
	svc.store.mu.RUnlock()
	if snapshot == nil {
		return constants.ErrNotFound
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

func (svc *Server) regionRecommendations(ctx echo.Context) error {
	season := ctx.QueryParam("season")

	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	regionID := pathID(ctx)
	recommendations := make([]domain.CropRecommendation, 0)
	for _, rec := range svc.store.recommendations {
		if rec.RegionID != regionID {
			continue
		}
		if season != "" && rec.Season != season {
			continue
		}
		recommendations = append(recommendations, *rec)
	}
	sort.Slice(recommendations, func(i, j int) bool { return recommendations[i].ID < recommendations[j].ID })

	return ctx.JSON(http.StatusOK, echo.Map{"recommendations": recommendations})
}

func (svc *Server) allRecommendations(ctx echo.Context) error {
	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	recommendations := make([]domain.CropRecommendation, 0, len(svc.store.recommendations))
	for _, rec := range svc.store.recommendations {
		recommendations = append(recommendations, *rec)
	}
	sort.Slice(recommendations, func(i, j int) bool { return recommendations[i].ID < recommendations[j].ID })

	return ctx.JSON(http.StatusOK, echo.Map{"recommendations": recommendations})
}

type recommendationRequest struct {
	RegionID        int64  `json:"region_id" validate:"required"`
	CropName        string `json:"crop_name" validate:"required"`
	Season          string `json:"season" validate:"required"`
	PlantingMonth   string `json:"planting_month"`
	HarvestingMonth string `json:"harvesting_month"`
	Description     string `json:"description"`
}

func (svc *Server) createRecommendation(ctx echo.Context) error {
	var req recommendationRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	svc.store.mu.Lock()
	defer svc.store.mu.Unlock()

	if svc.store.regions[req.RegionID] == nil {
		return constants.NewCodedError(http.StatusBadRequest, "unknown region")
	}
	rec := &domain.CropRecommendation{
		ID:              svc.store.id(),
		RegionID:        req.RegionID,
		CropName:        req.CropName,
		Season:          req.Season,
		PlantingMonth:   req.PlantingMonth,
		HarvestingMonth: req.HarvestingMonth,
		Description:     req.Description,
	}
	svc.store.recommendations[rec.ID] = rec

	return ctx.JSON(http.StatusCreated, echo.Map{"recommendation": rec})
}

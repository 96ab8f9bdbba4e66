package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

type stubAgroAPI struct {
	regions []domain.Region
	listErr error

	recommendations []domain.CropRecommendation
	all             []domain.CropRecommendation

	lastSeason string
}

func (s *stubAgroAPI) ListRegions(ctx context.Context) ([]domain.Region, error) {
	return s.regions, s.listErr
}

func (s *stubAgroAPI) Weather(ctx context.Context, regionID int64) (*domain.WeatherSnapshot, error) {
	return &domain.WeatherSnapshot{RegionID: regionID, Temperature: 21}, nil
}

func (s *stubAgroAPI) CropRecommendations(ctx context.Context, regionID int64, season string) ([]domain.CropRecommendation, error) {
	s.lastSeason = season
	return s.recommendations, nil
}

func (s *stubAgroAPI) AllCropRecommendations(ctx context.Context) ([]domain.CropRecommendation, error) {
	return s.all, nil
}

func TestEmptyRegionsIsNotAnError(t *testing.T) {
	ctrl := NewAgroClimate(&stubAgroAPI{}, time.Minute)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	if ctrl.Phase() != PhaseReady {
		t.Errorf("phase = %s, want ready", ctrl.Phase())
	}
	if !ctrl.Empty() {
		t.Error("expected empty substate")
	}
}

func TestRegionsErrorSubstate(t *testing.T) {
	ctrl := NewAgroClimate(&stubAgroAPI{listErr: errors.New("backend down")}, time.Minute)
	if err := ctrl.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}

	if ctrl.Phase() != PhaseError {
		t.Errorf("phase = %s, want error", ctrl.Phase())
	}
	if ctrl.Empty() {
		t.Error("error substate must not read as empty")
	}
}

func TestFailedReloadClearsRegions(t *testing.T) {
	api := &stubAgroAPI{regions: []domain.Region{{ID: 1}, {ID: 2}}}
	ctrl := NewAgroClimate(api, time.Minute)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	ctrl.SelectRegion(2)
	if _, err := ctrl.FetchWeather(context.Background()); err != nil {
		t.Fatal(err)
	}

	api.listErr = errors.New("backend down")
	if err := ctrl.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if got := len(ctrl.Regions()); got != 0 {
		t.Errorf("stale regions shown behind the error phase: %d", got)
	}
	if ctrl.Selected() != 0 {
		t.Errorf("selection = %d, want none after a failed fetch", ctrl.Selected())
	}
	if ctrl.Weather() != nil {
		t.Error("weather survived a failed fetch")
	}
}

func TestSelectionPreservedAcrossReload(t *testing.T) {
	api := &stubAgroAPI{regions: []domain.Region{{ID: 1, Name: "Central"}, {ID: 2, Name: "Lake"}}}
	ctrl := NewAgroClimate(api, time.Minute)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if ctrl.Selected() != 1 {
		t.Fatalf("default selection = %d, want first region", ctrl.Selected())
	}

	ctrl.SelectRegion(2)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if ctrl.Selected() != 2 {
		t.Errorf("selection = %d, want preserved 2", ctrl.Selected())
	}

	// selected region disappears: fall back to the first
	api.regions = []domain.Region{{ID: 1, Name: "Central"}}
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if ctrl.Selected() != 1 {
		t.Errorf("selection = %d, want fallback 1", ctrl.Selected())
	}

	// all regions gone: no selection
	api.regions = nil
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if ctrl.Selected() != 0 {
		t.Errorf("selection = %d, want none", ctrl.Selected())
	}
}

func TestSeasonFilterForwarded(t *testing.T) {
	api := &stubAgroAPI{regions: []domain.Region{{ID: 1}}}
	ctrl := NewAgroClimate(api, time.Minute)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	ctrl.SetSeason("long rains")
	if err := ctrl.FetchRecommendations(context.Background()); err != nil {
		t.Fatal(err)
	}
	if api.lastSeason != "long rains" {
		t.Errorf("season = %q", api.lastSeason)
	}
}

func TestChartDataGroupsBySeason(t *testing.T) {
	api := &stubAgroAPI{all: []domain.CropRecommendation{
		{ID: 1, Season: "long rains"},
		{ID: 2, Season: "long rains"},
		{ID: 3, Season: "short rains"},
	}}
	ctrl := NewAgroClimate(api, time.Minute)

	chart, err := ctrl.ChartData(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(chart) != 2 {
		t.Fatalf("chart = %+v", chart)
	}
	if chart[0].Season != "long rains" || chart[0].Count != 2 {
		t.Errorf("first bar = %+v", chart[0])
	}
	if chart[1].Season != "short rains" || chart[1].Count != 1 {
		t.Errorf("second bar = %+v", chart[1])
	}
}

func TestWeatherEphemeral(t *testing.T) {
	api := &stubAgroAPI{regions: []domain.Region{{ID: 1}, {ID: 2}}}
	ctrl := NewAgroClimate(api, time.Minute)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, err := ctrl.FetchWeather(context.Background()); err != nil {
		t.Fatal(err)
	}
	if ctrl.Weather() == nil {
		t.Fatal("expected weather snapshot")
	}

	// switching region drops the old snapshot
	ctrl.SelectRegion(2)
	if ctrl.Weather() != nil {
		t.Error("weather should be dropped on region switch")
	}
}

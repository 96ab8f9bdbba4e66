package controller

import (
	"context"
	"sort"
	"time"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/logger"
)

// AgroClimateAPI is the gateway surface the agroclimate controller consumes.
// Satisfied by *client.AgroClimateGateway.
type AgroClimateAPI interface {
	ListRegions(ctx context.Context) ([]domain.Region, error)
	Weather(ctx context.Context, regionID int64) (*domain.WeatherSnapshot, error)
	CropRecommendations(ctx context.Context, regionID int64, season string) ([]domain.CropRecommendation, error)
	AllCropRecommendations(ctx context.Context) ([]domain.CropRecommendation, error)
}

// AgroClimateController owns the climate view: the region list with its two
// distinct terminal substates (a backend with zero regions is ready-and-empty,
// not an error), the selected region, its ephemeral weather, and crop
// recommendations per season.
type AgroClimateController struct {
	state
	api      AgroClimateAPI
	interval time.Duration

	regions  []domain.Region
	selected int64
	season   string

	weather         *domain.WeatherSnapshot
	recommendations []domain.CropRecommendation

	poll *poller
}

func NewAgroClimate(api AgroClimateAPI, pollInterval time.Duration) *AgroClimateController {
	return &AgroClimateController{api: api, interval: pollInterval}
}

// Load fetches the region list. A previously selected region survives the
// reload when it is still present; otherwise selection falls back to the
// first region, or to none when the list is empty.
func (c *AgroClimateController) Load(ctx context.Context) error {
	gen := c.begin()

	regions, err := c.api.ListRegions(ctx)

	c.mu.Lock()
	if c.gen == gen {
		if err != nil {
			c.regions = nil
			c.selected = 0
			c.weather = nil
			c.recommendations = nil
		} else {
			c.regions = regions
			c.selected = reselect(regions, c.selected)
		}
	}
	c.mu.Unlock()

	if !c.finish(gen, err) {
		return nil
	}
	return err
}

func reselect(regions []domain.Region, previous int64) int64 {
	for _, region := range regions {
		if region.ID == previous {
			return previous
		}
	}
	if len(regions) > 0 {
		return regions[0].ID
	}
	return 0
}

func (c *AgroClimateController) StartPolling(ctx context.Context) {
	if c.poll != nil {
		return
	}
	c.poll = startPoller(ctx, c.interval, func(ctx context.Context) {
		if err := c.Load(ctx); err != nil {
			logger.Warnf(ctx, "agroclimate poll: %s", err.Error())
		}
	})
}

func (c *AgroClimateController) Close() {
	if c.poll != nil {
		c.poll.stop()
		c.poll = nil
	}
}

func (c *AgroClimateController) Regions() []domain.Region {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Region, len(c.regions))
	copy(out, c.regions)
	return out
}

// Empty distinguishes ready-with-no-regions from the error phase.
func (c *AgroClimateController) Empty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase == PhaseReady && len(c.regions) == 0
}

func (c *AgroClimateController) Selected() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selected
}

// SelectRegion changes selection and drops region-scoped data; the caller
// re-fetches weather and recommendations for the new region.
func (c *AgroClimateController) SelectRegion(regionID int64) {
	c.mu.Lock()
	if c.selected != regionID {
		c.selected = regionID
		c.weather = nil
		c.recommendations = nil
	}
	c.mu.Unlock()
}

func (c *AgroClimateController) SetSeason(season string) {
	c.mu.Lock()
	c.season = season
	c.mu.Unlock()
}

// FetchWeather pulls a fresh snapshot for the selected region. Weather is
// ephemeral: never persisted, replaced wholesale on every fetch.
func (c *AgroClimateController) FetchWeather(ctx context.Context) (*domain.WeatherSnapshot, error) {
	c.mu.RLock()
	regionID := c.selected
	c.mu.RUnlock()
	if regionID == 0 {
		return nil, nil
	}

	snapshot, err := c.api.Weather(ctx, regionID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.weather = snapshot
	c.mu.Unlock()
	return snapshot, nil
}

func (c *AgroClimateController) Weather() *domain.WeatherSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.weather
}

// FetchRecommendations pulls crop recommendations for the selected region and
// the current season filter.
func (c *AgroClimateController) FetchRecommendations(ctx context.Context) error {
	c.mu.RLock()
	regionID := c.selected
	season := c.season
	c.mu.RUnlock()
	if regionID == 0 {
		return nil
	}

	recommendations, err := c.api.CropRecommendations(ctx, regionID, season)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.recommendations = recommendations
	c.mu.Unlock()
	return nil
}

func (c *AgroClimateController) Recommendations() []domain.CropRecommendation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.CropRecommendation, len(c.recommendations))
	copy(out, c.recommendations)
	return out
}

// SeasonCount is one chart bar: how many recommendations a season carries.
type SeasonCount struct {
	Season string
	Count  int
}

// ChartData groups all recommendations by season across every region, sorted
// by season name for a stable chart.
func (c *AgroClimateController) ChartData(ctx context.Context) ([]SeasonCount, error) {
	recommendations, err := c.api.AllCropRecommendations(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, rec := range recommendations {
		counts[rec.Season]++
	}
	out := make([]SeasonCount, 0, len(counts))
	for season, count := range counts {
		out = append(out, SeasonCount{Season: season, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out, nil
}

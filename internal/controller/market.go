package controller

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shamsy-hassan/FSH-sub001/internal/client"
	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// StatusAll is the sentinel that disables the client-side status filter.
const StatusAll = "All"

// Sort modes for the marketplace view.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortPopular   = "popular"
	SortInterest  = "interest"
)

// MarketAPI is the gateway surface the market controller consumes. Satisfied
// by *client.MarketGateway.
type MarketAPI interface {
	ListPosts(ctx context.Context, opts client.ListPostsOpts) ([]domain.MarketPost, error)
	Stats(ctx context.Context) (*domain.MarketStats, error)
	PostInterests(ctx context.Context, postID int64) ([]domain.Interest, error)
	ApprovePost(ctx context.Context, postID int64) error
	RejectPost(ctx context.Context, postID int64) error
	DeletePost(ctx context.Context, postID int64) error
	AcceptInterest(ctx context.Context, interestID int64) error
	CreateNeed(ctx context.Context, input client.CreatePostInput) (*domain.MarketPost, error)
	UpdateNeed(ctx context.Context, needID int64, fields map[string]interface{}) error
	DeleteNeed(ctx context.Context, needID int64) error
}

// MarketController owns the marketplace view data: the fetched post list plus
// client-side search, status filter and sorting, and stats derived from the
// posts themselves.
type MarketController struct {
	state
	api      MarketAPI
	interval time.Duration

	// server-side filters, re-fetched on change
	category string
	region   string

	// client-side refinements, applied in Posts()
	search string
	status string
	sortBy string

	posts     []domain.MarketPost
	stats     *domain.MarketStats
	interests map[int64][]domain.Interest

	poll *poller
}

func NewMarket(api MarketAPI, pollInterval time.Duration) *MarketController {
	return &MarketController{
		api:       api,
		interval:  pollInterval,
		status:    StatusAll,
		sortBy:    SortNewest,
		interests: make(map[int64][]domain.Interest),
	}
}

// Load fetches posts and stats in parallel under one generation.
func (c *MarketController) Load(ctx context.Context) error {
	gen := c.begin()

	c.mu.RLock()
	opts := client.ListPostsOpts{Category: c.category, Region: c.region}
	c.mu.RUnlock()

	var (
		posts []domain.MarketPost
		stats *domain.MarketStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = c.api.ListPosts(gctx, opts)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = c.api.Stats(gctx)
		return err
	})
	err := g.Wait()

	c.mu.Lock()
	if c.gen == gen {
		// a failed fetch empties the view; stale data never shows behind the error phase
		if err != nil {
			c.posts = nil
			c.stats = nil
			c.interests = make(map[int64][]domain.Interest)
		} else {
			c.posts = posts
			c.stats = stats
		}
	}
	c.mu.Unlock()

	if !c.finish(gen, err) {
		return nil
	}
	return err
}

// StartPolling refreshes on the configured interval until Close.
func (c *MarketController) StartPolling(ctx context.Context) {
	if c.poll != nil {
		return
	}
	c.poll = startPoller(ctx, c.interval, func(ctx context.Context) {
		if err := c.Load(ctx); err != nil {
			logger.Warnf(ctx, "market poll: %s", err.Error())
		}
	})
}

func (c *MarketController) Close() {
	if c.poll != nil {
		c.poll.stop()
		c.poll = nil
	}
}

// SetServerFilters changes the fetch parameters; the caller re-Loads after.
func (c *MarketController) SetServerFilters(category, region string) {
	c.mu.Lock()
	c.category = category
	c.region = region
	c.mu.Unlock()
}

func (c *MarketController) SetSearch(query string) {
	c.mu.Lock()
	c.search = query
	c.mu.Unlock()
}

func (c *MarketController) SetStatusFilter(status string) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
}

func (c *MarketController) SetSort(mode string) {
	c.mu.Lock()
	c.sortBy = mode
	c.mu.Unlock()
}

// Posts applies search, status filter and sort to a copy of the fetched list.
// The fetched order is never mutated, so switching sorts is always stable
// against the original.
func (c *MarketController) Posts() []domain.MarketPost {
	c.mu.RLock()
	search := strings.ToLower(strings.TrimSpace(c.search))
	status := c.status
	sortBy := c.sortBy
	src := c.posts
	c.mu.RUnlock()

	out := make([]domain.MarketPost, 0, len(src))
	for _, post := range src {
		if status != StatusAll && post.Status != status {
			continue
		}
		if search != "" && !postMatches(post, search) {
			continue
		}
		out = append(out, post)
	}
	sortPosts(out, sortBy)
	return out
}

func postMatches(post domain.MarketPost, search string) bool {
	return strings.Contains(strings.ToLower(post.Title), search) ||
		strings.Contains(strings.ToLower(post.Description), search) ||
		strings.Contains(strings.ToLower(post.Category), search)
}

func sortPosts(posts []domain.MarketPost, mode string) {
	switch mode {
	case SortOldest:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.Before(posts[j].CreatedAt.Time)
		})
	case SortPriceAsc:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Price < posts[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Price > posts[j].Price
		})
	case SortPopular:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].ViewCount > posts[j].ViewCount
		})
	case SortInterest:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].InterestCount > posts[j].InterestCount
		})
	default: // SortNewest
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.After(posts[j].CreatedAt.Time)
		})
	}
}

// DerivedStats is computed from the fetched posts, not the backend stats
// endpoint, so it reflects exactly what the view shows.
type DerivedStats struct {
	Total           int
	Available       int
	PendingApproval int
	TotalInterests  int
	Revenue         decimal.Decimal
}

// DeriveStats aggregates over all fetched posts. Revenue sums price×quantity
// of active posts in exact decimal arithmetic.
func (c *MarketController) DeriveStats() DerivedStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := DerivedStats{Total: len(c.posts), Revenue: decimal.Zero}
	for _, post := range c.posts {
		stats.TotalInterests += post.InterestCount
		if !post.Approved {
			stats.PendingApproval++
		}
		if post.Status == domain.PostStatusActive {
			stats.Available++
			amount := decimal.NewFromFloat(post.Price).Mul(decimal.NewFromFloat(post.Quantity))
			stats.Revenue = stats.Revenue.Add(amount)
		}
	}
	return stats
}

// ServerStats is the backend's own aggregate, fetched alongside the posts.
func (c *MarketController) ServerStats() *domain.MarketStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Interests lazily fetches and caches the interest list for one post. Load
// drops the cache.
func (c *MarketController) Interests(ctx context.Context, postID int64) ([]domain.Interest, error) {
	c.mu.RLock()
	cached, ok := c.interests[postID]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	interests, err := c.api.PostInterests(ctx, postID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.interests[postID] = interests
	c.mu.Unlock()
	return interests, nil
}

// refetch reloads after a successful mutation and drops the interest cache.
func (c *MarketController) refetch(ctx context.Context) error {
	c.mu.Lock()
	c.interests = make(map[int64][]domain.Interest)
	c.mu.Unlock()
	return c.Load(ctx)
}

func (c *MarketController) Approve(ctx context.Context, postID int64) error {
	if err := c.api.ApprovePost(ctx, postID); err != nil {
		return err
	}
	return c.refetch(ctx)
}

func (c *MarketController) Reject(ctx context.Context, postID int64) error {
	if err := c.api.RejectPost(ctx, postID); err != nil {
		return err
	}
	return c.refetch(ctx)
}

func (c *MarketController) Delete(ctx context.Context, postID int64) error {
	if err := c.api.DeletePost(ctx, postID); err != nil {
		return err
	}
	return c.refetch(ctx)
}

func (c *MarketController) AcceptInterest(ctx context.Context, interestID int64) error {
	if err := c.api.AcceptInterest(ctx, interestID); err != nil {
		return err
	}
	return c.refetch(ctx)
}

func (c *MarketController) CreateNeed(ctx context.Context, input client.CreatePostInput) error {
	if _, err := c.api.CreateNeed(ctx, input); err != nil {
		return err
	}
	return c.refetch(ctx)
}

func (c *MarketController) UpdateNeed(ctx context.Context, needID int64, fields map[string]interface{}) error {
	if err := c.api.UpdateNeed(ctx, needID, fields); err != nil {
		return err
	}
	return c.refetch(ctx)
}

func (c *MarketController) DeleteNeed(ctx context.Context, needID int64) error {
	if err := c.api.DeleteNeed(ctx, needID); err != nil {
		return err
	}
	return c.refetch(ctx)
}

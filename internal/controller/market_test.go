package controller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shamsy-hassan/FSH-sub001/internal/client"
	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

type stubMarketAPI struct {
	posts     []domain.MarketPost
	stats     domain.MarketStats
	interests []domain.Interest

	listCalls     atomic.Int64
	interestCalls atomic.Int64
	approved      []int64
	listErr       error

	// when set, ListPosts blocks until released
	block chan struct{}
	// posts returned while blocked
	blockedPosts []domain.MarketPost
}

func (s *stubMarketAPI) ListPosts(ctx context.Context, opts client.ListPostsOpts) ([]domain.MarketPost, error) {
	n := s.listCalls.Add(1)
	if s.block != nil && n == 1 {
		<-s.block
		return s.blockedPosts, nil
	}
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.posts, nil
}

func (s *stubMarketAPI) Stats(ctx context.Context) (*domain.MarketStats, error) {
	stats := s.stats
	return &stats, nil
}

func (s *stubMarketAPI) PostInterests(ctx context.Context, postID int64) ([]domain.Interest, error) {
	s.interestCalls.Add(1)
	return s.interests, nil
}

func (s *stubMarketAPI) ApprovePost(ctx context.Context, postID int64) error {
	s.approved = append(s.approved, postID)
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].Approved = true
			s.posts[i].Status = domain.PostStatusActive
		}
	}
	return nil
}

func (s *stubMarketAPI) RejectPost(ctx context.Context, postID int64) error { return nil }
func (s *stubMarketAPI) DeletePost(ctx context.Context, postID int64) error { return nil }
func (s *stubMarketAPI) AcceptInterest(ctx context.Context, id int64) error { return nil }
func (s *stubMarketAPI) DeleteNeed(ctx context.Context, needID int64) error { return nil }

func (s *stubMarketAPI) CreateNeed(ctx context.Context, input client.CreatePostInput) (*domain.MarketPost, error) {
	return &domain.MarketPost{ID: 99, Title: input.Title}, nil
}

func (s *stubMarketAPI) UpdateNeed(ctx context.Context, needID int64, fields map[string]interface{}) error {
	return nil
}

func day(n int) domain.Timestamp {
	return domain.Timestamp{Time: time.Date(2026, 8, n, 0, 0, 0, 0, time.UTC)}
}

func fixturePosts() []domain.MarketPost {
	return []domain.MarketPost{
		{ID: 1, Title: "Maize Seed H614", Price: 3200, Quantity: 40, Status: domain.PostStatusActive, Approved: true, ViewCount: 120, InterestCount: 3, CreatedAt: day(4)},
		{ID: 2, Title: "Fresh avocados", Price: 15, Quantity: 2000, Status: domain.PostStatusPending, ViewCount: 8, CreatedAt: day(7)},
		{ID: 3, Title: "Tilapia fingerlings", Price: 8, Quantity: 5000, Status: domain.PostStatusActive, Approved: true, ViewCount: 64, InterestCount: 1, CreatedAt: day(1)},
		{ID: 4, Title: "Sorghum seedlings", Price: 12, Quantity: 300, Status: domain.PostStatusClosed, Approved: true, ViewCount: 30, CreatedAt: day(2)},
	}
}

func loadedMarket(t *testing.T, api *stubMarketAPI) *MarketController {
	t.Helper()
	ctrl := NewMarket(api, time.Minute)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	return ctrl
}

func TestMarketSearchCaseInsensitive(t *testing.T) {
	ctrl := loadedMarket(t, &stubMarketAPI{posts: fixturePosts()})

	ctrl.SetSearch("seed")
	got := ctrl.Posts()
	if len(got) != 2 {
		t.Fatalf("got %d posts, want 2", len(got))
	}
	for _, post := range got {
		if post.ID != 1 && post.ID != 4 {
			t.Errorf("unexpected post %d", post.ID)
		}
	}
}

func TestMarketStatusFilterAllSentinel(t *testing.T) {
	ctrl := loadedMarket(t, &stubMarketAPI{posts: fixturePosts()})

	if got := len(ctrl.Posts()); got != 4 {
		t.Fatalf("All sentinel should pass everything, got %d", got)
	}

	ctrl.SetStatusFilter(domain.PostStatusActive)
	if got := len(ctrl.Posts()); got != 2 {
		t.Errorf("active filter: got %d posts, want 2", got)
	}

	ctrl.SetStatusFilter(StatusAll)
	if got := len(ctrl.Posts()); got != 4 {
		t.Errorf("restored sentinel: got %d posts, want 4", got)
	}
}

func TestMarketSorts(t *testing.T) {
	ctrl := loadedMarket(t, &stubMarketAPI{posts: fixturePosts()})

	ctrl.SetSort(SortPriceAsc)
	posts := ctrl.Posts()
	if posts[0].ID != 3 || posts[len(posts)-1].ID != 1 {
		t.Errorf("price asc order wrong: %v", ids(posts))
	}

	ctrl.SetSort(SortNewest)
	posts = ctrl.Posts()
	if posts[0].ID != 2 {
		t.Errorf("newest first, got %v", ids(posts))
	}

	ctrl.SetSort(SortPopular)
	posts = ctrl.Posts()
	if posts[0].ID != 1 {
		t.Errorf("most viewed first, got %v", ids(posts))
	}

	// sorting must not mutate the fetched order
	ctrl.SetSort(SortNewest)
	first := ids(ctrl.Posts())
	ctrl.SetSort(SortPriceDesc)
	_ = ctrl.Posts()
	ctrl.SetSort(SortNewest)
	if second := ids(ctrl.Posts()); !equalIDs(first, second) {
		t.Errorf("sort mutated underlying data: %v then %v", first, second)
	}
}

func ids(posts []domain.MarketPost) []int64 {
	out := make([]int64, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDeriveStats(t *testing.T) {
	ctrl := loadedMarket(t, &stubMarketAPI{posts: fixturePosts()})

	stats := ctrl.DeriveStats()
	if stats.Total != 4 || stats.Available != 2 || stats.PendingApproval != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalInterests != 4 {
		t.Errorf("interests = %d, want 4", stats.TotalInterests)
	}
	// 3200*40 + 8*5000 over the two active posts
	if got := stats.Revenue.StringFixed(2); got != "168000.00" {
		t.Errorf("revenue = %s, want 168000.00", got)
	}
}

func TestDeriveStatsEmpty(t *testing.T) {
	ctrl := loadedMarket(t, &stubMarketAPI{})

	stats := ctrl.DeriveStats()
	if !stats.Revenue.IsZero() {
		t.Errorf("empty revenue = %s, want 0", stats.Revenue)
	}
}

func TestApproveRefetches(t *testing.T) {
	api := &stubMarketAPI{posts: fixturePosts()}
	ctrl := loadedMarket(t, api)

	before := api.listCalls.Load()
	pendingBefore := ctrl.DeriveStats().PendingApproval
	if err := ctrl.Approve(context.Background(), 2); err != nil {
		t.Fatal(err)
	}
	if len(api.approved) != 1 || api.approved[0] != 2 {
		t.Errorf("approved = %v", api.approved)
	}
	if api.listCalls.Load() != before+1 {
		t.Error("approve should trigger a refetch")
	}

	// the re-fetched post carries the approval and the derived count drops by one
	for _, post := range ctrl.Posts() {
		if post.ID == 2 && (!post.Approved || post.Status != domain.PostStatusActive) {
			t.Errorf("post 2 after approval = %+v", post)
		}
	}
	if got := ctrl.DeriveStats().PendingApproval; got != pendingBefore-1 {
		t.Errorf("pending approvals %d -> %d, want a decrease of 1", pendingBefore, got)
	}
}

func TestFailedLoadClearsView(t *testing.T) {
	api := &stubMarketAPI{posts: fixturePosts()}
	ctrl := loadedMarket(t, api)

	api.listErr = errors.New("backend down")
	if err := ctrl.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if ctrl.Phase() != PhaseError {
		t.Errorf("phase = %s, want error", ctrl.Phase())
	}
	if got := ctrl.Posts(); len(got) != 0 {
		t.Errorf("stale posts shown behind the error phase: %v", ids(got))
	}
	if stats := ctrl.DeriveStats(); stats.Total != 0 || !stats.Revenue.IsZero() {
		t.Errorf("stats derived from stale posts: %+v", stats)
	}

	// the next successful fetch restores the view
	api.listErr = nil
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := len(ctrl.Posts()); got != 4 {
		t.Errorf("posts after recovery = %d, want 4", got)
	}
	if ctrl.Phase() != PhaseReady {
		t.Errorf("phase after recovery = %s, want ready", ctrl.Phase())
	}
}

func TestInterestsLazyAndCached(t *testing.T) {
	api := &stubMarketAPI{
		posts:     fixturePosts(),
		interests: []domain.Interest{{ID: 1, PostID: 1}},
	}
	ctrl := loadedMarket(t, api)

	if api.interestCalls.Load() != 0 {
		t.Fatal("interests fetched eagerly")
	}
	for i := 0; i < 3; i++ {
		if _, err := ctrl.Interests(context.Background(), 1); err != nil {
			t.Fatal(err)
		}
	}
	if got := api.interestCalls.Load(); got != 1 {
		t.Errorf("interest fetches = %d, want 1 (cached)", got)
	}

	// mutation invalidates the cache
	if err := ctrl.Delete(context.Background(), 4); err != nil {
		t.Fatal(err)
	}
	if _, err := ctrl.Interests(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if got := api.interestCalls.Load(); got != 2 {
		t.Errorf("interest fetches after refetch = %d, want 2", got)
	}
}

func TestGenerationFencing(t *testing.T) {
	stale := []domain.MarketPost{{ID: 100, Title: "stale result"}}
	api := &stubMarketAPI{
		posts:        fixturePosts(),
		block:        make(chan struct{}),
		blockedPosts: stale,
	}
	ctrl := NewMarket(api, time.Minute)

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_ = ctrl.Load(context.Background()) // gen 1, blocks in ListPosts
	}()

	// wait for the first fetch to claim its generation
	for api.listCalls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	if err := ctrl.Load(context.Background()); err != nil { // gen 2, completes
		t.Fatal(err)
	}

	close(api.block) // let the stale gen 1 fetch finish
	<-firstDone

	posts := ctrl.Posts()
	if len(posts) != len(fixturePosts()) {
		t.Fatalf("got %d posts, want %d", len(posts), len(fixturePosts()))
	}
	for _, post := range posts {
		if post.ID == 100 {
			t.Fatal("stale fetch overwrote newer data")
		}
	}
	if ctrl.Phase() != PhaseReady {
		t.Errorf("phase = %s, want ready", ctrl.Phase())
	}
}

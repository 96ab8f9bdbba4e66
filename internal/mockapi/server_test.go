package mockapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/shamsy-hassan/FSH-sub001/internal/client"
	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
	"github.com/shamsy-hassan/FSH-sub001/internal/session"
)

func newTestClient(t *testing.T) (*client.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(NewServer("test-secret").Handler())
	t.Cleanup(srv.Close)

	sess, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatal(err)
	}
	return client.New(srv.URL+"/api", sess), srv
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Auth.Login(context.Background(), "admin", "wrong", constants.UserTypeAdmin)
	var coded *constants.CodedError
	if !errors.As(err, &coded) || coded.Code() != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401 CodedError", err)
	}
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Market.ListPosts(context.Background(), client.ListPostsOpts{})
	var coded *constants.CodedError
	if !errors.As(err, &coded) || coded.Code() != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401 CodedError", err)
	}
}

// The full admin loop: login, inspect stats, approve the seeded pending post,
// verify the approval landed through a re-fetch.
func TestAdminApprovalFlow(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	resp, err := c.Auth.AdminLogin(ctx, "admin", "admin123")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Type != constants.UserTypeAdmin || !c.Session().IsAdmin() {
		t.Fatalf("login type = %q", resp.Type)
	}

	before, err := c.Market.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if before.PendingApprovals == 0 {
		t.Fatal("seed should contain a pending post")
	}

	posts, err := c.Market.ListPosts(ctx, client.ListPostsOpts{Status: domain.PostStatusPending})
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) == 0 {
		t.Fatal("no pending posts listed")
	}

	if err := c.Market.ApprovePost(ctx, posts[0].ID); err != nil {
		t.Fatal(err)
	}

	after, err := c.Market.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if after.PendingApprovals != before.PendingApprovals-1 {
		t.Errorf("pending approvals %d -> %d, want a decrease of 1", before.PendingApprovals, after.PendingApprovals)
	}

	approved, err := c.Market.GetPost(ctx, posts[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if !approved.Approved || approved.Status != domain.PostStatusActive {
		t.Errorf("post after approval = %+v", approved)
	}
}

func TestServerSideAdminEnforcement(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Auth.Login(ctx, "wanjiku", "farm123", constants.UserTypeUser); err != nil {
		t.Fatal(err)
	}

	// bypass the client-side guard to prove the backend enforces too
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/dashboard/admin/overview", nil)
	req.Header.Set("Authorization", "Bearer "+c.Session().Token())
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestUserMarketLifecycle(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Auth.Login(ctx, "otieno", "farm123", constants.UserTypeUser); err != nil {
		t.Fatal(err)
	}

	post, err := c.Market.CreatePost(ctx, client.CreatePostInput{
		Title:       "Groundnuts, shelled",
		Description: "Dried and sorted",
		Price:       180,
		Quantity:    500,
		Unit:        "kg",
		Category:    "grains",
		Region:      "Nyanza",
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if post.ID == 0 || post.Status != domain.PostStatusPending {
		t.Fatalf("created post = %+v", post)
	}

	mine, err := c.Market.UserPosts(ctx, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, p := range mine {
		if p.ID == post.ID {
			found = true
		}
	}
	if !found {
		t.Error("created post missing from user posts")
	}

	if err := c.Market.DeletePost(ctx, post.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Market.GetPost(ctx, post.ID); err == nil {
		t.Error("deleted post still fetchable")
	}
}

func TestInterestFlow(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Auth.Login(ctx, "otieno", "farm123", constants.UserTypeUser); err != nil {
		t.Fatal(err)
	}

	posts, err := c.Market.ListPosts(ctx, client.ListPostsOpts{Status: domain.PostStatusActive})
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) == 0 {
		t.Fatal("no active posts in seed")
	}
	target := posts[0]

	if err := c.Market.ExpressInterest(ctx, target.ID, "can collect this week"); err != nil {
		t.Fatal(err)
	}
	interests, err := c.Market.PostInterests(ctx, target.ID)
	if err != nil {
		t.Fatal(err)
	}
	var expressed *domain.Interest
	for i := range interests {
		if interests[i].Message == "can collect this week" {
			expressed = &interests[i]
		}
	}
	if expressed == nil {
		t.Fatal("expressed interest not listed")
	}
	if expressed.Accepted {
		t.Fatal("fresh interest must start unaccepted")
	}

	if err := c.Market.AcceptInterest(ctx, expressed.ID); err != nil {
		t.Fatal(err)
	}
	accepted := fetchInterest(t, c, target.ID, expressed.ID)
	if !accepted.Accepted {
		t.Fatal("accept did not flip the interest")
	}

	// accepting again is a no-op, never a reversal
	if err := c.Market.AcceptInterest(ctx, expressed.ID); err != nil {
		t.Fatal(err)
	}
	if again := fetchInterest(t, c, target.ID, expressed.ID); !again.Accepted {
		t.Error("second accept reversed the acceptance")
	}

	closed, err := c.Market.GetPost(ctx, target.ID)
	if err != nil {
		t.Fatal(err)
	}
	if closed.Status != domain.PostStatusClosed {
		t.Errorf("post after acceptance = %q, want closed", closed.Status)
	}
}

func fetchInterest(t *testing.T, c *client.Client, postID, interestID int64) domain.Interest {
	t.Helper()
	interests, err := c.Market.PostInterests(context.Background(), postID)
	if err != nil {
		t.Fatal(err)
	}
	for _, interest := range interests {
		if interest.ID == interestID {
			return interest
		}
	}
	t.Fatalf("interest %d not listed for post %d", interestID, postID)
	return domain.Interest{}
}

func TestLoanStatusTransitionEnforcedServerSide(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Auth.AdminLogin(ctx, "admin", "admin123"); err != nil {
		t.Fatal(err)
	}

	saccos, err := c.Sacco.ListSaccos(ctx, client.ListSaccosOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(saccos) == 0 {
		t.Fatal("no saccos in seed")
	}

	apps, err := c.Sacco.LoanApplications(ctx, saccos[0].ID, client.LoanApplicationsOpts{Status: domain.LoanStatusPending})
	if err != nil {
		t.Fatal(err)
	}
	if len(apps) == 0 {
		t.Fatal("no pending applications in seed")
	}

	// legal transition
	if err := c.Sacco.UpdateLoanStatus(ctx, apps[0].ID, apps[0].Status, domain.LoanStatusApproved); err != nil {
		t.Fatal(err)
	}

	// now approved; approving again must fail on the backend
	err = c.Sacco.UpdateLoanStatus(ctx, apps[0].ID, domain.LoanStatusPending, domain.LoanStatusApproved)
	var coded *constants.CodedError
	if !errors.As(err, &coded) || coded.Code() != http.StatusConflict {
		t.Fatalf("err = %v, want 409 CodedError", err)
	}
}

func TestRefreshIssuesNewToken(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Auth.Login(ctx, "wanjiku", "farm123", constants.UserTypeUser); err != nil {
		t.Fatal(err)
	}
	ok, err := c.Auth.Refresh(ctx)
	if err != nil || !ok {
		t.Fatalf("refresh = (%v, %v)", ok, err)
	}
	if !c.Session().Authenticated() {
		t.Error("session lost after refresh")
	}

	// the refreshed token still works
	if _, err := c.Auth.Profile(ctx); err != nil {
		t.Errorf("profile with refreshed token: %v", err)
	}
}

func TestRegionsAndRecommendations(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Auth.Login(ctx, "wanjiku", "farm123", constants.UserTypeUser); err != nil {
		t.Fatal(err)
	}

	regions, err := c.AgroClimate.ListRegions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) != 3 {
		t.Fatalf("regions = %d, want 3", len(regions))
	}

	weather, err := c.AgroClimate.Weather(ctx, regions[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if weather.RegionID != regions[0].ID {
		t.Errorf("weather region = %d", weather.RegionID)
	}

	recs, err := c.AgroClimate.CropRecommendations(ctx, regions[0].ID, "long rains")
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range recs {
		if rec.Season != "long rains" {
			t.Errorf("season filter leaked %q", rec.Season)
		}
	}
}

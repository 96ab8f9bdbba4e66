package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
	"github.com/shamsy-hassan/FSH-sub001/internal/session"
)

func newTestSession(t *testing.T) *session.Store {
	t.Helper()
	s, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDecodeListBothShapes(t *testing.T) {
	bare := []byte(`[{"id":1,"name":"Central"},{"id":2,"name":"Lake"}]`)
	enveloped := []byte(`{"regions":[{"id":1,"name":"Central"},{"id":2,"name":"Lake"}]}`)

	for name, raw := range map[string][]byte{"bare": bare, "enveloped": enveloped} {
		items, err := decodeList[domain.Region](raw, "regions")
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(items) != 2 || items[1].Name != "Lake" {
			t.Errorf("%s: items = %+v", name, items)
		}
	}
}

func TestDecodeListMissingFieldIsEmpty(t *testing.T) {
	items, err := decodeList[domain.Region]([]byte(`{"message":"ok"}`), "regions")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("items = %+v, want empty", items)
	}
}

func TestQueryOmitsAbsentFilters(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"posts":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t))
	_, err := c.Market.ListPosts(context.Background(), ListPostsOpts{Region: "Central"})
	if err != nil {
		t.Fatal(err)
	}

	want := "page=1&per_page=20&region=Central"
	if got != want {
		t.Errorf("query = %q, want %q", got, want)
	}
}

func TestResponseErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMsg     string
	}{
		{"message field", 400, "application/json", `{"message":"bad input"}`, "bad input"},
		{"error field", 422, "application/json", `{"error":"cannot process"}`, "cannot process"},
		{"plain text", 502, "text/plain", "upstream died", "upstream died"},
		{"empty body", 500, "text/plain", "", "api request failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := responseError(tc.status, tc.contentType, []byte(tc.body))
			var coded *constants.CodedError
			if !errors.As(err, &coded) {
				t.Fatalf("error is %T, want CodedError", err)
			}
			if coded.Code() != tc.status {
				t.Errorf("code = %d, want %d", coded.Code(), tc.status)
			}
			if coded.Error() != tc.wantMsg {
				t.Errorf("message = %q, want %q", coded.Error(), tc.wantMsg)
			}
		})
	}
}

func TestLoginPersistsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"access_token":"tok-abc","type":"user","user":{"id":7,"username":"wanjiku"}}`))
	}))
	defer srv.Close()

	sess := newTestSession(t)
	c := New(srv.URL, sess)

	resp, err := c.Auth.Login(context.Background(), "wanjiku", "farm123", constants.UserTypeUser)
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Account() == nil {
		t.Fatalf("resp = %+v", resp)
	}
	if sess.Token() != "tok-abc" {
		t.Errorf("session token = %q", sess.Token())
	}
	if sess.UserID() != "7" {
		t.Errorf("session user id = %q", sess.UserID())
	}
}

func TestFailedRefreshClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	sess := newTestSession(t)
	if err := sess.Set("stale", "7", constants.UserTypeUser); err != nil {
		t.Fatal(err)
	}
	c := New(srv.URL, sess)

	ok, err := c.Auth.Refresh(context.Background())
	if ok || err == nil {
		t.Fatalf("refresh = (%v, %v), want failure", ok, err)
	}
	if sess.Authenticated() {
		t.Error("session should be cleared after failed refresh")
	}
}

func TestBearerAndRequestIDHeaders(t *testing.T) {
	var auth, requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		requestID = r.Header.Get(constants.HeaderRequestID)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"posts":[]}`))
	}))
	defer srv.Close()

	sess := newTestSession(t)
	_ = sess.Set("tok-xyz", "1", constants.UserTypeUser)
	c := New(srv.URL, sess)

	if _, err := c.Market.ListPosts(context.Background(), ListPostsOpts{}); err != nil {
		t.Fatal(err)
	}
	if auth != "Bearer tok-xyz" {
		t.Errorf("authorization = %q", auth)
	}
	if requestID == "" {
		t.Error("request id header missing")
	}
}

func TestCreatePostMultipart(t *testing.T) {
	var gotTitle, gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotTitle = r.FormValue("title")
		if files := r.MultipartForm.File["images"]; len(files) == 1 {
			gotFilename = files[0].Filename
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"post":{"id":10,"title":"Maize seed"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t))
	post, err := c.Market.CreatePost(context.Background(), CreatePostInput{
		Title:       "Maize seed",
		Description: "Certified seed",
		Price:       3200,
		Quantity:    40,
	}, []PostImage{{Filename: "bag.jpg", Content: []byte("jpegdata")}})
	if err != nil {
		t.Fatal(err)
	}
	if post == nil || post.ID != 10 {
		t.Fatalf("post = %+v", post)
	}
	if gotTitle != "Maize seed" {
		t.Errorf("title = %q", gotTitle)
	}
	if gotFilename != "bag.jpg" {
		t.Errorf("filename = %q", gotFilename)
	}
}

func TestCreatePostValidation(t *testing.T) {
	c := New("http://unused.invalid", newTestSession(t))
	_, err := c.Market.CreatePost(context.Background(), CreatePostInput{Title: "no description"}, nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestAdminGuardShortCircuits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer srv.Close()

	sess := newTestSession(t)
	_ = sess.Set("tok", "1", constants.UserTypeUser)
	c := New(srv.URL, sess)

	_, err := c.Dashboard.AdminOverview(context.Background())
	if !errors.Is(err, constants.ErrAdminRequired) {
		t.Errorf("err = %v, want ErrAdminRequired", err)
	}
	if err := c.Market.ApprovePost(context.Background(), 1); !errors.Is(err, constants.ErrAdminRequired) {
		t.Errorf("approve err = %v, want ErrAdminRequired", err)
	}
}

func TestUpdateLoanStatusTerminalGuard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer srv.Close()

	sess := newTestSession(t)
	_ = sess.Set("tok", "1", constants.UserTypeAdmin)
	c := New(srv.URL, sess)

	err := c.Sacco.UpdateLoanStatus(context.Background(), 5, domain.LoanStatusDisbursed, domain.LoanStatusPending)
	if err == nil {
		t.Fatal("expected transition error for terminal status")
	}
}

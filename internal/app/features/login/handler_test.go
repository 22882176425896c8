package login_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/ecochef/ecochef/internal/app/features/login"
	"github.com/ecochef/ecochef/internal/app/store/accounts"
	"github.com/ecochef/ecochef/internal/app/system/auth"
	"github.com/ecochef/ecochef/internal/domain/models"
)

type fakeAuthenticator struct {
	acct *models.Account
	err  error
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, _, _ string) (*models.Account, error) {
	return f.acct, f.err
}

func newSessionMgr(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(strings.Repeat("k", 32), "ecochef_session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return sm
}

func TestHandleSubmit_Success(t *testing.T) {
	acct := &models.Account{
		ID:       primitive.NewObjectID(),
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
	}
	h := login.NewHandler(&fakeAuthenticator{acct: acct}, newSessionMgr(t), zap.NewNop())

	form := url.Values{"email": {"ada@example.com"}, "password": {"hunter22"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.HandleSubmit(rec, req)

	if rec.Code != 303 {
		t.Fatalf("expected status 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("expected redirect to /dashboard, got %q", loc)
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected a session cookie to be set")
	}
}

// fakeFetcher resolves only one account ID, the way the account-backed
// fetcher installed in bootstrap does against the accounts collection.
type fakeFetcher struct {
	acct *models.Account
}

func (f *fakeFetcher) FetchUser(_ context.Context, userID string) *auth.SessionUser {
	if userID != f.acct.ID.Hex() {
		return nil
	}
	return &auth.SessionUser{ID: userID, Name: f.acct.FullName, Email: f.acct.Email}
}

func TestHandleSubmit_SessionSurvivesRefresh(t *testing.T) {
	acct := &models.Account{
		ID:       primitive.NewObjectID(),
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
	}
	sm := newSessionMgr(t)
	sm.SetUserFetcher(&fakeFetcher{acct: acct})
	h := login.NewHandler(&fakeAuthenticator{acct: acct}, sm, zap.NewNop())

	form := url.Values{"email": {"ada@example.com"}, "password": {"hunter22"}}
	loginReq := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	loginReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	loginRec := httptest.NewRecorder()

	h.HandleSubmit(loginRec, loginReq)

	if loginRec.Code != 303 {
		t.Fatalf("expected status 303, got %d", loginRec.Code)
	}

	// Replay the fresh session through the middleware chain a signed-in
	// page sits behind. The ID written at login must be one the fetcher
	// can resolve, or every authenticated page bounces back to /login.
	reached := false
	protected := sm.LoadSessionUser(sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		u, ok := auth.CurrentUser(r)
		if !ok {
			t.Fatal("expected user in context")
		}
		if u.ID != acct.ID.Hex() {
			t.Errorf("session user ID: got %q, want %q", u.ID, acct.ID.Hex())
		}
	})))

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Accept", "text/html")
	for _, c := range loginRec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	if !reached {
		t.Fatalf("request never reached the handler; status %d location %q",
			rec.Code, rec.Header().Get("Location"))
	}
}

func TestHandleSubmit_ReturnParam(t *testing.T) {
	acct := &models.Account{ID: primitive.NewObjectID(), Email: "ada@example.com", FullName: "Ada"}
	h := login.NewHandler(&fakeAuthenticator{acct: acct}, newSessionMgr(t), zap.NewNop())

	form := url.Values{
		"email":    {"ada@example.com"},
		"password": {"hunter22"},
		"return":   {"/groceries"},
	}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.HandleSubmit(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/groceries" {
		t.Errorf("expected redirect to /groceries, got %q", loc)
	}
}

func TestHandleSubmit_BadCredentials(t *testing.T) {
	h := login.NewHandler(&fakeAuthenticator{err: accounts.ErrInvalidCredentials}, newSessionMgr(t), zap.NewNop())

	form := url.Values{"email": {"ada@example.com"}, "password": {"wrong"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	// Re-rendering the form may panic without initialized templates.
	func() {
		defer func() { _ = recover() }()
		h.HandleSubmit(rec, req)
	}()

	if rec.Code == 303 {
		t.Error("expected no redirect for bad credentials")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no session cookie for bad credentials")
	}
}

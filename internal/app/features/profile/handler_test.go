package profile_test

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/ecochef/ecochef/internal/app/features/profile"
	"github.com/ecochef/ecochef/internal/testutil"
)

func TestServeProfile_Unauthenticated(t *testing.T) {
	h := profile.NewHandler(nil, zap.NewNop())

	rec := testutil.NewRecorder()
	req := httptest.NewRequest("GET", "/profile", nil)

	// No session user in context: the handler must bounce to the login
	// page before touching the store.
	h.ServeProfile(rec, req)

	rec.AssertRedirect(t, "/login")
}

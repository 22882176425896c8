package groceries_test

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/ecochef/ecochef/internal/app/features/groceries"
)

func TestServeList_Unauthenticated(t *testing.T) {
	h := groceries.NewHandler(nil, zap.NewNop())

	req := httptest.NewRequest("GET", "/groceries", nil)
	rec := httptest.NewRecorder()

	h.ServeList(rec, req)

	if rec.Code != 303 {
		t.Fatalf("expected status 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

func TestHandleAdd_Unauthenticated(t *testing.T) {
	h := groceries.NewHandler(nil, zap.NewNop())

	req := httptest.NewRequest("POST", "/groceries", nil)
	rec := httptest.NewRecorder()

	h.HandleAdd(rec, req)

	if rec.Code != 303 {
		t.Fatalf("expected status 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

package errors

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/campaigngen/internal/app/system/viewdata"
	"github.com/dalemusser/campaigngen/internal/testutil"
	"go.uber.org/zap"
)

func TestUnavailableData(t *testing.T) {
	h := NewHandler(viewdata.NewShell("", testutil.FailedHolder(t)), zap.NewNop())
	data := h.unavailableData(httptest.NewRequest("GET", "/dashboard", nil))

	if data.Title != "Settings unavailable" {
		t.Errorf("Title: got %q", data.Title)
	}
	if !data.SettingsDegraded {
		t.Error("expected SettingsDegraded to be set")
	}
	if !strings.HasPrefix(data.Detail, "Source: file:") {
		t.Errorf("Detail: got %q", data.Detail)
	}
}

func TestSettingsUnavailable_Status(t *testing.T) {
	h := NewHandler(viewdata.NewShell("", testutil.FailedHolder(t)), zap.NewNop())
	rec := httptest.NewRecorder()

	// Template rendering may panic without a booted engine in tests.
	func() {
		defer func() { _ = recover() }()
		h.SettingsUnavailable(rec, httptest.NewRequest("GET", "/dashboard", nil))
	}()

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/campaigngen/internal/app/system/routetable"
	"github.com/dalemusser/campaigngen/internal/app/system/settings"
	"github.com/dalemusser/campaigngen/internal/app/system/viewdata"
	"github.com/dalemusser/campaigngen/internal/testutil"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validConfig() AppConfig {
	return AppConfig{
		AppTitle:               "Campaign Generator",
		SettingsFile:           "public/assets/settings.config.json",
		SettingsTimeout:        5 * time.Second,
		SettingsAttemptTimeout: time.Second,
		SettingsRetries:        2,
		SettingsPolicy:         settings.PolicyDegrade,
	}
}

func TestValidateConfig_Accepts(t *testing.T) {
	cfg := validConfig()
	if err := ValidateConfig(nil, cfg, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.SettingsBaseURL = "https://cdn.example.com/campaign"
	cfg.SettingsPolicy = "BLOCK"
	if err := ValidateConfig(nil, cfg, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateConfig_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		want   string
	}{
		{"unknown policy", func(c *AppConfig) { c.SettingsPolicy = "retry-forever" }, "settings_on_failure"},
		{"negative retries", func(c *AppConfig) { c.SettingsRetries = -1 }, "settings_retries"},
		{"relative base url", func(c *AppConfig) { c.SettingsBaseURL = "/assets" }, "settings_base_url"},
		{"non-http base url", func(c *AppConfig) { c.SettingsBaseURL = "ftp://example.com" }, "settings_base_url"},
		{"no source", func(c *AppConfig) { c.SettingsFile = " " }, "settings_file"},
		{"negative timeout", func(c *AppConfig) { c.SettingsTimeout = -time.Second }, "timeouts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(nil, cfg, testLogger())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestNewSettingsSource(t *testing.T) {
	cfg := validConfig()
	if _, ok := newSettingsSource(cfg, testLogger()).(*settings.FileSource); !ok {
		t.Error("expected a file source without a base URL")
	}

	cfg.SettingsBaseURL = "https://cdn.example.com/"
	src := newSettingsSource(cfg, testLogger())
	if _, ok := src.(*settings.HTTPSource); !ok {
		t.Fatalf("expected an HTTP source, got %T", src)
	}
	if got, want := src.String(), "https://cdn.example.com"+settings.Path; got != want {
		t.Errorf("source: got %q, want %q", got, want)
	}
}

func TestConnectDB_BuildsDeps(t *testing.T) {
	cfg := validConfig()
	cfg.SettingsPolicy = "Block"

	deps, err := ConnectDB(t.Context(), nil, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	if deps.Policy != settings.PolicyBlock {
		t.Errorf("Policy: got %q", deps.Policy)
	}
	if deps.Settings == nil || deps.Shell == nil || deps.Source == nil {
		t.Fatalf("incomplete deps: %+v", deps)
	}
	if deps.Shell.Settings != deps.Settings {
		t.Error("shell must share the settings holder")
	}
	if deps.Settings.Status() != settings.StatusPending {
		t.Errorf("holder should be pending before Startup, got %q", deps.Settings.Status())
	}
}

// stubPages answers every page with its key so routing can be checked
// without the template engine.
func stubPages() routetable.Pages {
	pages := routetable.Pages{}
	for _, rt := range routetable.Routes() {
		page := rt.Page
		pages[page] = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("page:" + page))
		})
	}
	return pages
}

func testDeps(holder *settings.Holder, policy settings.Policy) Deps {
	return Deps{
		Settings: holder,
		Policy:   policy,
		Shell:    viewdata.NewShell("Campaign Generator", holder),
	}
}

func serve(t *testing.T, h http.Handler, target string) *testutil.ResponseRecorder {
	t.Helper()
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewRequest("GET", target))
	return rec
}

func TestBuildRouter_RoutesEveryPage(t *testing.T) {
	holder := testutil.LoadedHolder(t, `{"environment":"UAT"}`)
	h, err := buildRouter(testDeps(holder, settings.PolicyBlock), stubPages(), testLogger())
	if err != nil {
		t.Fatalf("buildRouter: %v", err)
	}

	for _, rt := range routetable.Routes() {
		rec := serve(t, h, rt.Path)
		rec.AssertStatus(t, http.StatusOK)
		rec.AssertContains(t, "page:"+rt.Page)
	}

	serve(t, h, "/").AssertRedirect(t, routetable.DefaultPath)
	serve(t, h, "/no-such-page").AssertStatus(t, http.StatusNotFound)
}

func TestBuildRouter_DegradedStillServesPages(t *testing.T) {
	holder := testutil.FailedHolder(t)
	h, err := buildRouter(testDeps(holder, settings.PolicyDegrade), stubPages(), testLogger())
	if err != nil {
		t.Fatalf("buildRouter: %v", err)
	}

	for _, rt := range routetable.Routes() {
		serve(t, h, rt.Path).AssertStatus(t, http.StatusOK)
	}
	if v := holder.Get("environment"); v != nil {
		t.Errorf("expected nil from a failed holder, got %v", v)
	}

	rec := serve(t, h, "/health")
	rec.AssertStatus(t, http.StatusOK)
	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("health body: %v", err)
	}
	if body.Status != "degraded" {
		t.Errorf("health status: got %q, want degraded", body.Status)
	}
}

func TestBuildRouter_BlockRefusesPagesButNotHealth(t *testing.T) {
	holder := testutil.FailedHolder(t)
	h, err := buildRouter(testDeps(holder, settings.PolicyBlock), stubPages(), testLogger())
	if err != nil {
		t.Fatalf("buildRouter: %v", err)
	}

	rec := httptest.NewRecorder()
	// The unavailable page renders a template; without a booted engine the
	// render may panic, which Recoverer turns into a 500. Either way the
	// stub page must not be reached.
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/dashboard", nil))
	if rec.Code == http.StatusOK || strings.Contains(rec.Body.String(), "page:") {
		t.Errorf("page served under block policy: %d %q", rec.Code, rec.Body.String())
	}

	serve(t, h, "/health").AssertStatus(t, http.StatusServiceUnavailable)
}

func TestBuildRouter_MissingPage(t *testing.T) {
	pages := stubPages()
	delete(pages, routetable.PageReleaseNotes)

	_, err := buildRouter(testDeps(settings.NewHolder(), settings.PolicyDegrade), pages, testLogger())
	if err == nil {
		t.Fatal("expected error for missing page")
	}
}

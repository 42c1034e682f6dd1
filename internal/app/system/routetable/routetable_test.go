package routetable_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/campaigngen/internal/app/system/routetable"
	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
)

// stubPages returns handlers that write their own page key.
func stubPages() routetable.Pages {
	pages := routetable.Pages{}
	for _, rt := range routetable.Routes() {
		page := rt.Page
		r := chi.NewRouter()
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, page)
		})
		pages[page] = r
	}
	return pages
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	if err := routetable.Mount(r, stubPages()); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return r
}

// follow issues GET path, following one redirect, and returns the final
// path and body.
func follow(t *testing.T, h http.Handler, path string) (string, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code == http.StatusFound {
		path = rec.Header().Get("Location")
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s: status %d", path, rec.Code)
	}
	return path, rec.Body.String()
}

func TestRoutes_Table(t *testing.T) {
	want := []string{
		"/dashboard",
		"/web1-query-builder",
		"/campaign-segmentation",
		"/loan-exclusion",
		"/release-notes",
		"/contact-us",
	}
	var got []string
	for _, rt := range routetable.Routes() {
		got = append(got, rt.Path)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("route paths mismatch (-want +got):\n%s", diff)
	}
}

func TestRoutes_ReturnsCopy(t *testing.T) {
	rs := routetable.Routes()
	rs[0].Path = "/changed"
	if routetable.Routes()[0].Path != "/dashboard" {
		t.Error("Routes() exposed the underlying table")
	}
}

func TestResolve_RootRedirectsToDashboard(t *testing.T) {
	for _, p := range []string{"", "/"} {
		for i := 0; i < 3; i++ {
			rt, ok := routetable.Resolve(p)
			if !ok || rt.Page != routetable.PageDashboard {
				t.Fatalf("Resolve(%q) attempt %d = %+v, %v", p, i, rt, ok)
			}
		}
	}
}

func TestResolve_UnknownPath(t *testing.T) {
	for _, p := range []string{"/admin", "/dashboard/extra", "dashboard"} {
		if _, ok := routetable.Resolve(p); ok {
			t.Errorf("Resolve(%q) should not match", p)
		}
	}
}

func TestResolve_TrailingSlash(t *testing.T) {
	rt, ok := routetable.Resolve("/release-notes/")
	if !ok || rt.Page != routetable.PageReleaseNotes {
		t.Errorf("got %+v, %v", rt, ok)
	}
}

func TestRoutes_DistinctPages(t *testing.T) {
	seen := map[string]string{}
	for _, rt := range routetable.Routes() {
		if prev, dup := seen[rt.Page]; dup {
			t.Errorf("page %q served by both %s and %s", rt.Page, prev, rt.Path)
		}
		seen[rt.Page] = rt.Path
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 distinct pages, got %d", len(seen))
	}
}

func TestMount_RootRedirect(t *testing.T) {
	h := newRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != routetable.DefaultPath {
		t.Errorf("Location: got %q, want %q", loc, routetable.DefaultPath)
	}

	for i := 0; i < 3; i++ {
		path, body := follow(t, h, "/")
		if path != "/dashboard" || body != routetable.PageDashboard {
			t.Errorf("attempt %d: landed on %s (%s)", i, path, body)
		}
	}
}

func TestMount_EachPathServesItsPage(t *testing.T) {
	h := newRouter(t)

	bodies := map[string]bool{}
	for _, rt := range routetable.Routes() {
		_, body := follow(t, h, rt.Path)
		if body != rt.Page {
			t.Errorf("GET %s: got page %q, want %q", rt.Path, body, rt.Page)
		}
		bodies[body] = true
	}
	if len(bodies) != len(routetable.Routes()) {
		t.Errorf("expected %d distinct pages, got %d", len(routetable.Routes()), len(bodies))
	}
}

func TestMount_UnknownPathIsNotFound(t *testing.T) {
	h := newRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestMount_MissingPage(t *testing.T) {
	pages := stubPages()
	delete(pages, routetable.PageContactUs)

	err := routetable.Mount(chi.NewRouter(), pages)
	if !errors.Is(err, routetable.ErrMissingPage) {
		t.Fatalf("expected ErrMissingPage, got %v", err)
	}
}

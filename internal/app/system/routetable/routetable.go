// Package routetable is the static mapping from URL paths to the shell's
// pages. The empty path and "/" redirect to the dashboard.
package routetable

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Page keys. Each route maps to exactly one page.
const (
	PageDashboard            = "dashboard"
	PageWeb1QueryBuilder     = "web1-query-builder"
	PageCampaignSegmentation = "campaign-segmentation"
	PageLoanExclusion        = "loan-exclusion"
	PageReleaseNotes         = "release-notes"
	PageContactUs            = "contact-us"
)

// DefaultPath is where the empty path and "/" redirect.
const DefaultPath = "/dashboard"

// Route binds a URL path to a page key.
type Route struct {
	Path string
	Page string
}

// routes is the full table, in menu order.
var routes = []Route{
	{Path: "/dashboard", Page: PageDashboard},
	{Path: "/web1-query-builder", Page: PageWeb1QueryBuilder},
	{Path: "/campaign-segmentation", Page: PageCampaignSegmentation},
	{Path: "/loan-exclusion", Page: PageLoanExclusion},
	{Path: "/release-notes", Page: PageReleaseNotes},
	{Path: "/contact-us", Page: PageContactUs},
}

// ErrMissingPage is returned by Mount when a route has no handler.
var ErrMissingPage = errors.New("no handler for page")

// Routes returns a copy of the table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Has reports whether path is registered in the table.
func Has(path string) bool {
	_, ok := lookup(path)
	return ok
}

// Resolve returns the route that path lands on, following the default
// redirect for "" and "/". A trailing slash is ignored.
func Resolve(path string) (Route, bool) {
	if path == "" || path == "/" {
		path = DefaultPath
	}
	return lookup(strings.TrimSuffix(path, "/"))
}

func lookup(path string) (Route, bool) {
	for _, rt := range routes {
		if rt.Path == path {
			return rt, true
		}
	}
	return Route{}, false
}

// Pages maps page keys to the handlers that render them.
type Pages map[string]http.Handler

// Mount registers the redirect and every route on r. Each page handler is
// mounted at its path, so feature routers see "/" as their root.
func Mount(r chi.Router, pages Pages) error {
	var missing []string
	for _, rt := range routes {
		if pages[rt.Page] == nil {
			missing = append(missing, rt.Page)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingPage, strings.Join(missing, ", "))
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, DefaultPath, http.StatusFound)
	})
	for _, rt := range routes {
		r.Mount(rt.Path, pages[rt.Page])
	}
	return nil
}

package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"dario.cat/mergo"
	"github.com/dalemusser/campaigngen/internal/app/system/limits"
)

// Runtime is the typed view of the settings keys the shell understands.
// Keys not listed here stay available through Holder.Get.
type Runtime struct {
	Environment         string `json:"environment"`         // label shown in the footer (e.g., "UAT")
	Web1QueryBuilderURL string `json:"web1QueryBuilderUrl"` // external Web1 report query builder
	ContactEmail        string `json:"contactEmail"`
	ContactPhone        string `json:"contactPhone"`
	SupportHours        string `json:"supportHours"`
	FooterHTML          string `json:"footerHtml"` // sanitized before rendering
}

// DefaultRuntime returns the values used for known keys the document omits,
// and for every key when no document could be loaded.
func DefaultRuntime() Runtime {
	return Runtime{
		Environment:  "UAT",
		SupportHours: "Mon-Fri 8:00-17:00 CT",
	}
}

// Validate checks the known keys. All problems are reported together.
func (rt Runtime) Validate() error {
	var errs []error
	if rt.Web1QueryBuilderURL != "" {
		if err := checkHTTPURL(rt.Web1QueryBuilderURL); err != nil {
			errs = append(errs, fmt.Errorf("web1QueryBuilderUrl: %w", err))
		}
	}
	if rt.ContactEmail != "" && !strings.Contains(rt.ContactEmail, "@") {
		errs = append(errs, fmt.Errorf("contactEmail: %q is not an e-mail address", rt.ContactEmail))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func checkHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

// Document is a parsed settings document: the opaque map as received and the
// typed view of its known keys with defaults applied.
type Document struct {
	Values  map[string]any
	Runtime Runtime
}

// Parse decodes a settings document. The body must be a JSON object no larger
// than limits.MaxSettingsDocumentSize.
func Parse(body []byte) (Document, error) {
	if len(body) > limits.MaxSettingsDocumentSize {
		return Document{}, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrMalformed, len(body), limits.MaxSettingsDocumentSize)
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	values, ok := raw.(map[string]any)
	if !ok {
		return Document{}, fmt.Errorf("%w: got %s", ErrNotObject, jsonKind(raw))
	}

	var rt Runtime
	if err := json.Unmarshal(body, &rt); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := mergo.Merge(&rt, DefaultRuntime()); err != nil {
		return Document{}, fmt.Errorf("apply settings defaults: %w", err)
	}
	if err := rt.Validate(); err != nil {
		return Document{}, err
	}

	return Document{Values: values, Runtime: rt}, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

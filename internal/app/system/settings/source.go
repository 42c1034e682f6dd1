package settings

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Path is the fixed resource path of the settings document, relative to the
// base URL of an HTTPSource and mirrored under the local asset directory.
const Path = "/assets/settings.config.json"

// Payload is the raw document returned by a Source.
type Payload struct {
	Body     []byte
	Attempts int
}

// Source reads the settings document.
type Source interface {
	Fetch(ctx context.Context) (Payload, error)
	String() string
}

// HTTPSourceConfig configures an HTTPSource.
type HTTPSourceConfig struct {
	BaseURL        string
	Retries        int           // additional attempts after the first
	AttemptTimeout time.Duration // per-attempt timeout; 0 means rely on ctx only
}

// HTTPSource fetches the document with GET <BaseURL><Path>.
// Transport errors and 5xx responses are retried.
type HTTPSource struct {
	client *resty.Client
	url    string
}

// NewHTTPSource builds a resty-backed source.
func NewHTTPSource(cfg HTTPSourceConfig, logger *zap.Logger) *HTTPSource {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}

	cli := resty.New().
		SetBaseURL(base).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(250 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r != nil && r.StatusCode() >= http.StatusInternalServerError
		}).
		SetLogger(logger.Sugar())
	if cfg.AttemptTimeout > 0 {
		cli.SetTimeout(cfg.AttemptTimeout)
	}

	return &HTTPSource{client: cli, url: base + Path}
}

// Fetch performs the GET and returns the body of a 2xx response.
func (s *HTTPSource) Fetch(ctx context.Context) (Payload, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(Path)

	attempts := 1
	if resp != nil && resp.Request != nil && resp.Request.Attempt > 0 {
		attempts = resp.Request.Attempt
	}

	if err != nil {
		return Payload{Attempts: attempts}, fmt.Errorf("%w: GET %s: %v", ErrUnavailable, s.url, err)
	}
	if resp.IsError() || resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return Payload{Attempts: attempts}, fmt.Errorf("%w: GET %s returned %d", ErrUnavailable, s.url, resp.StatusCode())
	}

	return Payload{Body: resp.Body(), Attempts: attempts}, nil
}

func (s *HTTPSource) String() string { return s.url }

// FileSource reads the document from the local asset directory.
type FileSource struct {
	path string
}

// NewFileSource returns a source reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads the file.
func (s *FileSource) Fetch(ctx context.Context) (Payload, error) {
	if err := ctx.Err(); err != nil {
		return Payload{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, s.path, err)
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return Payload{Attempts: 1}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return Payload{Body: b, Attempts: 1}, nil
}

func (s *FileSource) String() string { return "file:" + s.path }

package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dalemusser/campaigngen/internal/app/system/settings"
	"go.uber.org/zap"
)

// LoadedHolder returns a holder populated from doc through the regular
// bootstrap path. The test fails if doc does not load.
func LoadedHolder(t *testing.T, doc string) *settings.Holder {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.config.json")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write settings document: %v", err)
	}
	h := settings.NewHolder()
	if _, err := settings.Bootstrap(context.Background(), settings.NewFileSource(path), h, settings.PolicyAbort, zap.NewNop()); err != nil {
		t.Fatalf("load settings document: %v", err)
	}
	return h
}

// FailedHolder returns a holder whose load failed, as after an unreachable
// settings source under the degrade policy.
func FailedHolder(t *testing.T) *settings.Holder {
	t.Helper()
	missing := filepath.Join(t.TempDir(), "missing.json")
	h := settings.NewHolder()
	if _, err := settings.Bootstrap(context.Background(), settings.NewFileSource(missing), h, settings.PolicyDegrade, zap.NewNop()); err != nil {
		t.Fatalf("degrade bootstrap returned error: %v", err)
	}
	return h
}

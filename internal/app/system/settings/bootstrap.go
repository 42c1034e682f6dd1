package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/campaigngen/internal/app/system/timeouts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result is the outcome of the one-shot settings load.
type Result struct {
	LoadID   string
	Source   string
	Attempts int
	Duration time.Duration
	Keys     int
	Err      error
}

// OK reports whether the document was loaded and stored.
func (r Result) OK() bool { return r.Err == nil }

// Bootstrap reads the settings document from src once, parses it, and stores
// it in h. On failure the holder is marked failed and left empty.
//
// The returned error is non-nil only when the load failed and policy is
// PolicyAbort; otherwise failures are reported through Result.Err.
func Bootstrap(ctx context.Context, src Source, h *Holder, policy Policy, logger *zap.Logger) (Result, error) {
	res := Result{
		LoadID: uuid.NewString(),
		Source: src.String(),
	}
	log := logger.With(
		zap.String("settings_source", res.Source),
		zap.String("load_id", res.LoadID),
	)

	fetchCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Fetch(), log, "settings fetch")
	defer cancel()

	start := time.Now()
	payload, err := src.Fetch(fetchCtx)
	res.Attempts = payload.Attempts
	if err == nil {
		var doc Document
		doc, err = Parse(payload.Body)
		if err == nil {
			res.Duration = time.Since(start)
			res.Keys = len(doc.Values)
			h.store(doc, res.Source, res.LoadID, time.Now().UTC())
			log.Info("settings loaded",
				zap.Int("keys", res.Keys),
				zap.Int("attempts", res.Attempts),
				zap.Duration("duration", res.Duration),
				zap.String("environment", doc.Runtime.Environment))
			return res, nil
		}
	}

	res.Duration = time.Since(start)
	res.Err = err
	h.fail(err, res.Source, res.LoadID, time.Now().UTC())

	fields := []zap.Field{
		zap.Error(err),
		zap.Int("attempts", res.Attempts),
		zap.Duration("duration", res.Duration),
		zap.String("policy", string(policy)),
	}
	if policy == PolicyAbort {
		log.Error("settings load failed; aborting startup", fields...)
		return res, fmt.Errorf("load settings from %s: %w", res.Source, err)
	}
	log.Warn("settings load failed; continuing without runtime settings", fields...)
	return res, nil
}

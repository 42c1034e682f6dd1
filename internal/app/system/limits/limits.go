// internal/app/system/limits/limits.go
package limits

// Size limits for documents read at startup.
const (
	// MaxSettingsDocumentSize is the largest settings document accepted
	// by the settings bootstrap. Larger bodies are rejected as malformed.
	MaxSettingsDocumentSize = 1 << 20 // 1 MB
)

package settings

import (
	"fmt"
	"strings"
)

// Policy decides what the application does when the settings document
// cannot be loaded.
type Policy string

const (
	// PolicyDegrade keeps serving with an empty map and default runtime
	// values, and shows a warning banner in the shell.
	PolicyDegrade Policy = "degrade"
	// PolicyBlock keeps the process up but answers page requests with a
	// 503 settings-unavailable page.
	PolicyBlock Policy = "block"
	// PolicyAbort fails startup.
	PolicyAbort Policy = "abort"
)

// Policies lists the accepted policy names.
var Policies = []Policy{PolicyDegrade, PolicyBlock, PolicyAbort}

// ParsePolicy maps a config value to a Policy. Empty means PolicyDegrade.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyDegrade:
		return PolicyDegrade, nil
	case PolicyBlock:
		return PolicyBlock, nil
	case PolicyAbort:
		return PolicyAbort, nil
	}
	return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnknownPolicy, s, Policies)
}

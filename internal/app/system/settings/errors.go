package settings

import "errors"

// Errors returned while reading and parsing the settings document.
var (
	// ErrNotObject indicates the document parsed as JSON but is not an object.
	ErrNotObject = errors.New("settings document is not a JSON object")
	// ErrMalformed indicates the document is not valid JSON or is too large.
	ErrMalformed = errors.New("settings document is malformed")
	// ErrInvalid indicates one or more known keys hold unusable values.
	ErrInvalid = errors.New("settings document is invalid")
	// ErrUnavailable indicates the document could not be read from its source.
	ErrUnavailable = errors.New("settings document unavailable")
	// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
	ErrUnknownPolicy = errors.New("unknown settings failure policy")
)

package dialogue

import "errors"

// Domain errors
var (
	// ErrUserRequired - sender identifier is required
	ErrUserRequired = errors.New("dialogue: user ID is required")

	// ErrMessageRequired - message text is required
	ErrMessageRequired = errors.New("dialogue: message is required")
)

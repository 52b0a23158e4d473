package gemini

const (
	// BaseURL is the Gemini generateContent endpoint prefix.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.0-flash"
)

// Message roles accepted by the Gemini API.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

package whatsapp

const (
	// DefaultBaseURL is the Meta Graph API endpoint prefix.
	DefaultBaseURL = "https://graph.facebook.com/v19.0"
	// MessagingProduct is the fixed messaging_product field value.
	MessagingProduct = "whatsapp"
)

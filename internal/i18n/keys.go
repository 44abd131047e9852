// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Errors
	KeyErrorNotFound = "error.not_found"
	KeyErrorInternal = "error.internal"
	KeyErrorConflict = "error.conflict"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthEmailTaken         = "auth.email_taken"
	KeyAuthForbidden          = "auth.forbidden"
	KeyAuthSignedIn           = "auth.signed_in"
	KeyAuthSignedUp           = "auth.signed_up"
	KeyAuthSignedOut          = "auth.signed_out"

	// Catalog
	KeyCategoryNotFound = "category.not_found"
	KeyProductNotFound  = "product.not_found"

	// Orders and resources
	KeyOrderPurchaseRequired = "order.purchase_required"

	// Seeding
	KeySeedCompleted = "seed.completed"
	KeySeedSkipped   = "seed.skipped"
	KeySeedFailed    = "seed.failed"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Rate limiting
	KeyRateLimitExceeded = "rate_limit.exceeded"
)

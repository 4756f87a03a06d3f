package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// The frontend maps these codes to user-facing messages.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // login required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong email/password
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"
	AuthUserNotFound       = "AUTH_USER_NOT_FOUND"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidStatus = "VALIDATION_INVALID_STATUS"

	// ==================== Listings (LISTING_) ====================
	ListingNotFound       = "LISTING_NOT_FOUND"
	ListingStatusMismatch = "LISTING_STATUS_MISMATCH" // status and is_active disagree

	// ==================== Franchises (FRANCHISE_) ====================
	FranchiseNotFound = "FRANCHISE_NOT_FOUND"

	// ==================== Businesses (BUSINESS_) ====================
	BusinessNotFound = "BUSINESS_NOT_FOUND"

	// ==================== Advertisements (AD_) ====================
	AdNotFound = "AD_NOT_FOUND"

	// ==================== Inquiries (INQUIRY_) ====================
	InquiryNotFound      = "INQUIRY_NOT_FOUND"
	InquiryInvalidTarget = "INQUIRY_INVALID_TARGET" // both franchise_id and business_id set
	InquiryRateLimited   = "INQUIRY_RATE_LIMITED"

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)

package errors

var (
	// Domain errors used in usecase/repository
	ErrUsernameTaken       = AlreadyExists("username is already taken")
	ErrUserNotFound        = NotFound("user not found")
	ErrInvalidUsername     = InvalidArg("username must be 3-32 chars, lowercase letters, numbers and underscores only")
	ErrInvalidDisplayName  = InvalidArg("display name cannot be empty")
	ErrInvalidCredentials  = Unauthorized("invalid username or password")
	ErrAccountDeleted      = FailedPrecondition("account is deleted")
	ErrInvalidToken        = Unauthorized("invalid or expired token")
	ErrAdminOnly           = Forbidden("admin role required")
	ErrInvalidDevice       = InvalidArg("device id and push token are required")
	ErrDeviceNotRegistered = NotFound("device is not registered")
)

func ErrRegistrationFailed(cause error) error {
	return Wrap(CodeInternal, "registration failed", cause)
}

func ErrLoginFailed(cause error) error {
	return Wrap(CodeUnauthenticated, "login failed", cause)
}

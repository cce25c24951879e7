package response

const (
	DefaultStackTraceDepth = 32
	DefaultErrorMessage    = "Something went wrong"
	MessageSuccess         = "Success"

	InternalServerErrorCode = 500
	ValidationErrorCode     = 400
	ValidationErrorMsg      = "Validation failed"

	DiscordMaxMessageLen = 1900
)

package response

const (
	// MessageSuccess is the message attached to every successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from clients.
	DefaultErrorMessage = "Something went wrong, please try again later"

	// InternalServerErrorCode is the envelope error code for 500 responses.
	InternalServerErrorCode = 500

	// DateFormat renders calendar dates (reminder target dates).
	DateFormat = "2006-01-02"
)

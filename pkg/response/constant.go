package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ErrorCodeValidation     = 400
	ErrorCodeTooManyRequest = 429
	InternalServerErrorCode = 500
)

package response

const (
	MessageSuccess        = "Success"
	MessageInternalError  = "Something went wrong"
	MessageInvalidRequest = "Invalid request"
	MessageUnauthorized   = "Unauthorized"

	CodeSuccess = 0
)

package response

const (
	MessageSuccess      = "OK"
	DefaultErrorMessage = "Something went wrong, please try again later"

	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

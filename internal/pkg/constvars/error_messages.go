package constvars

// Client messages, shown to the front desk user.
const (
	ErrClientCannotProcessRequest          = "Cannot process request. Please try again later"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application. Please try again later"
	ErrClientClinicAPIUnavailable          = "The clinic system could not be reached. Please try again later"
	ErrClientServerLongRespond             = "The clinic system is taking too long to respond. Please try again later"
	ErrClientInvalidRequestBody            = "The request body is not valid JSON"
	ErrClientTooManyRequests               = "Too many requests. Please slow down"

	ErrClientRegisterPatientFailed     = "Failed to register patient"
	ErrClientScheduleAppointmentFailed = "Failed to schedule appointment"
	ErrClientRegisterArrivalFailed     = "Failed to confirm arrival"
	ErrClientRegisterDetailsFailed     = "Failed to register consultation details"
)

// Dev messages, logged and only returned outside production.
const (
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevMissingConfig          = "required configuration %s is not set"
	ErrDevInvalidIdentifier      = "invalid identifier %q"
	ErrDevTooManyRequests        = "request rate limit exceeded"
	ErrDevPanicRecovered         = "recovered from panic"

	ErrDevClinicGetResource       = "failed to get %s from clinic API, status %d"
	ErrDevClinicDecodeResponse    = "failed to decode %s response from clinic API"
	ErrDevClinicOperationRejected = "clinic API rejected %s request"
)

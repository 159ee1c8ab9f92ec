package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"alphanum":      "must contain only alphanumeric characters",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"eqfield":       "must match %s",
	"password":      "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":       "must be a number",
	"len":           "must be %s characters long",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"lt":            "must be less than %s",
	"lte":           "must be less than or equal to %s",
	"datetime":      "must follow the %s format",
	"not_future":    "date of birth cannot be in the future",
	"mongodb":       "must be a valid id",
	"uuid4":         "must be a valid UUID",
	"required_with": "is required when %s is present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":           true,
	"max":           true,
	"len":           true,
	"eqfield":       true,
	"gt":            true,
	"gte":           true,
	"lt":            true,
	"lte":           true,
	"oneof":         true,
	"datetime":      true,
	"required_with": true,
}

// Tags whose message is returned as is, without the field name
var TagsWithStandaloneMessage = map[string]bool{
	"not_future": true,
}

// Error messages for clients
const (
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientResourceNotFound              = "the requested %s was not found"
	ErrClientInvalidAnswer                 = "the answer is not valid for this question"
	ErrClientUnknownQuestion               = "the question does not belong to this assessment"
	ErrClientUnknownSection                = "the section does not belong to this assessment"
	ErrClientUnknownInstrument             = "the questionnaire was not found"
	ErrClientIncompleteAssessment          = "please answer every question before submitting"
	ErrClientAssessmentExpired             = "the assessment was not found or has expired, please start again"
	ErrClientSubmitInProgress              = "the assessment is already being submitted"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate        = "cannot parse the requested date"
	ErrDevFailedToHashPassword   = "failed to hash password"
	ErrDevInvalidCredentials     = "invalid credentials"
	ErrDevMissingRequestID       = "request id missing from context"
	ErrDevMissingSession         = "session data missing from context"
	ErrDevBuildInstrumentCatalog = "failed to build instrument catalog"

	// Usecase messages
	ErrDevEmailAlreadyExists = "email already exists"
	ErrDevUserNotExists      = "user not exists in our system"
	ErrDevChildNotExists     = "child not exists or belongs to another guardian"
	ErrDevResultNotExists    = "assessment result not exists or belongs to another guardian"
	ErrDevAttemptNotExists   = "assessment attempt not exists, expired or belongs to another guardian"
	ErrDevSubmitInProgress   = "another submission holds the attempt lock"

	// Screening messages
	ErrDevScreeningInvalidAnswer      = "answer value outside the instrument answer scale"
	ErrDevScreeningUnknownQuestion    = "question id not defined by the instrument"
	ErrDevScreeningUnknownSection     = "section id not defined by the instrument"
	ErrDevScreeningUnknownInstrument  = "instrument id not defined in the catalog"
	ErrDevScreeningIncomplete         = "response set is incomplete"
	ErrDevScreeningInstrumentMismatch = "response set belongs to another instrument"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevQueryParamValidationFailed = "query parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitMQ queue %s"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanic            = "recovered from panic"
)

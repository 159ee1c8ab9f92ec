package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "SPSNS_SVC_"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

const (
	MongoCollectionUsers             = "users"
	MongoCollectionChildren          = "children"
	MongoCollectionAssessmentResults = "assessment_results"
)

const (
	RedisKeySessionFormat           = "session:%s"
	RedisKeyAssessmentAttemptFormat = "assessment_attempt:%s"
	RedisKeySubmitLockFormat        = "lock:assessment_submit:%s"
)

const (
	EventAssessmentCompleted = "assessment.completed"
)

const (
	ChildGenderBoy  = "boy"
	ChildGenderGirl = "girl"
)

const (
	DateLayoutISO = "2006-01-02"
)

package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingRequestKey         = "request"
	LoggingResponseKey        = "response"
	LoggingQueryParamsKey     = "query_params"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingResponseCountKey   = "response_count"
	LoggingUserIDKey          = "user_id"
	LoggingSessionIDKey       = "session_id"
	LoggingChildIDKey         = "child_id"
	LoggingAttemptIDKey       = "attempt_id"
	LoggingResultIDKey        = "result_id"
	LoggingInstrumentIDKey    = "instrument_id"
	LoggingQuestionIDKey      = "question_id"
	LoggingSectionIDKey       = "section_id"
	LoggingAgeMonthsKey       = "age_months"
	LoggingRiskLevelKey       = "risk_level"
	LoggingOverallScoreKey    = "overall_score"
	LoggingCompletionRatioKey = "completion_ratio"
	LoggingQueueNameKey       = "queue_name"
	LoggingEventKey           = "event"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)

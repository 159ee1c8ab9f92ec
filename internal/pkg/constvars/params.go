package constvars

const (
	URLParamChildID      = "childId"
	URLParamAttemptID    = "attemptId"
	URLParamResultID     = "resultId"
	URLParamInstrumentID = "instrumentId"
	URLParamSectionID    = "sectionId"
)

const (
	URLQueryParamAgeMonths = "ageMonths"
	URLQueryParamChildID   = "childId"
	URLQueryParamRisk      = "risk"
	URLQueryParamSort      = "sort"
	URLQueryParamSearch    = "q"
)

const (
	ResultRiskFilterAll    = "all"
	ResultRiskFilterLow    = "low"
	ResultRiskFilterMedium = "medium"
	ResultRiskFilterHigh   = "high"

	ResultSortNewest = "newest"
	ResultSortOldest = "oldest"
)

package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	HealthCheckSuccessMessage = "service is healthy"

	// Auth messages
	RegisterSuccessMessage = "user registered successfully"
	LoginSuccessMessage    = "successfully login"
	LogoutSuccessMessage   = "successfully logout"

	// User messages
	GetAccountSuccessMessage = "get account successfully"

	// Child messages
	CreateChildSuccessMessage   = "child profile created successfully"
	GetChildCardsSuccessMessage = "get child cards successfully"
	GetChildSuccessMessage      = "get child profile successfully"
	DeleteChildSuccessMessage   = "child profile deleted successfully"

	// Instrument messages
	GetInstrumentsSuccessMessage   = "get instruments successfully"
	GetInstrumentSuccessMessage    = "get instrument successfully"
	SelectInstrumentSuccessMessage = "instrument selected successfully"
	ScoreAnswersSuccessMessage     = "answers scored successfully"

	// Assessment messages
	StartAssessmentSuccessMessage   = "assessment started successfully"
	GetAssessmentSuccessMessage     = "get assessment successfully"
	RecordAnswerSuccessMessage      = "answer recorded successfully"
	GetSectionSuccessMessage        = "get assessment section successfully"
	SubmitAssessmentSuccessMessage  = "assessment submitted successfully"
	AbandonAssessmentSuccessMessage = "assessment abandoned successfully"

	// Result messages
	GetResultsSuccessMessage = "get assessment results successfully"
	GetResultSuccessMessage  = "get assessment result successfully"
)

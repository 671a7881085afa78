package metrics

// Operations.
const (
	OperationSearch          = "search"
	OperationQuerySuggestion = "query_suggestion"
	OperationSpelling        = "spelling_suggestion"
	OperationClick           = "click"
)

// Outcomes.
const (
	OutcomeSuccess         = "success"
	OutcomeCompileError    = "compile_error"
	OutcomeEngineError     = "engine_error"
	OutcomeInvalidResponse = "invalid_response"
	OutcomeCacheHit        = "cache_hit"
)

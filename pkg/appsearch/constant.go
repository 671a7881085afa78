package appsearch

const (
	apiPrefix = "/api/as/v1/engines/"

	pathSearch          = "/search"
	pathQuerySuggestion = "/query_suggestion"
	pathClick           = "/click"
	pathElasticsearch   = "/elasticsearch/_search"

	// SettingHost and SettingToken name the settings reported when missing.
	SettingHost  = "appsearch.host"
	SettingToken = "appsearch.token"
)

package model

// Suggestion asks for completions or spelling fixes of QueryString.
type Suggestion struct {
	QueryString string
	Limit       int
	Fields      []string
}

// Suggestions is the decoded suggestion list.
type Suggestions struct {
	Items   []string
	Success bool
}

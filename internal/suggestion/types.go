package suggestion

import "appsearch-srv/internal/model"

// Input is one suggestion request against one index.
type Input struct {
	Index      string
	Suggestion model.Suggestion
}

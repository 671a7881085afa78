package http

import (
	"appsearch-srv/internal/model"
	"appsearch-srv/internal/suggestion"
)

type suggestionReq struct {
	Query  string   `json:"query" binding:"required"`
	Limit  int      `json:"limit,omitempty" binding:"omitempty,min=1,max=20"`
	Fields []string `json:"fields,omitempty"`
}

func (r suggestionReq) toInput(index string) suggestion.Input {
	return suggestion.Input{
		Index: index,
		Suggestion: model.Suggestion{
			QueryString: r.Query,
			Limit:       r.Limit,
			Fields:      r.Fields,
		},
	}
}

type suggestionResp struct {
	Success     bool     `json:"success"`
	Suggestions []string `json:"suggestions"`
}

func (h *handler) newSuggestionResp(s model.Suggestions) suggestionResp {
	items := s.Items
	if items == nil {
		items = []string{}
	}
	return suggestionResp{Success: s.Success, Suggestions: items}
}

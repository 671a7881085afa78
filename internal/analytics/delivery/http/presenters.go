package http

import (
	"appsearch-srv/internal/analytics"
	"appsearch-srv/internal/model"
)

type clickReq struct {
	QueryString string   `json:"query_string"`
	EngineName  string   `json:"engine_name" binding:"required"`
	DocumentID  string   `json:"document_id" binding:"required"`
	RequestID   string   `json:"request_id"`
	Tags        []string `json:"tags"`
}

func (r clickReq) toInput() analytics.ClickInput {
	return analytics.ClickInput{
		Data: model.AnalyticsData{
			QueryString: r.QueryString,
			EngineName:  r.EngineName,
			DocumentID:  r.DocumentID,
			RequestID:   r.RequestID,
		},
		Tags: r.Tags,
	}
}

type clickResp struct {
	Accepted bool `json:"accepted"`
}

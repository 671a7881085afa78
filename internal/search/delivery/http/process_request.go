package http

import (
	"appsearch-srv/internal/search"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSearchRequest(c *gin.Context) (search.SearchInput, error) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return search.SearchInput{}, err
	}
	if err := req.validate(); err != nil {
		return search.SearchInput{}, err
	}

	return search.SearchInput{
		Index: c.Param("index"),
		Query: req.toQuery(),
	}, nil
}

func (h *handler) processMultiSearchRequest(c *gin.Context) ([]search.SearchInput, error) {
	var req multiSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return req.toInputs()
}

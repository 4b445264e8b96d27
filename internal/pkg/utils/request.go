package utils

import (
	"net/http"
	"strconv"

	"dentora-service/internal/pkg/constvars"
)

func ParsePagination(r *http.Request) (page, pageSize int) {
	pageStr := r.URL.Query().Get(constvars.URLQueryParamPage)
	pageSizeStr := r.URL.Query().Get(constvars.URLQueryParamPageSize)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err = strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return page, pageSize
}

package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// QueryParams carries common list-endpoint paging parameters.
type QueryParams struct {
	Page     int
	PageSize int
}

func (p QueryParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// FromEchoContext reads page/page_size query parameters with sane bounds.
func FromEchoContext(c echo.Context) QueryParams {
	p := QueryParams{Page: defaultPage, PageSize: defaultPageSize}

	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && v > 0 {
		p.PageSize = v
		if p.PageSize > maxPageSize {
			p.PageSize = maxPageSize
		}
	}
	return p
}

package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/devfolio/devfolio/internal/db/pagination"
)

// ListParams are the common query parameters of the admin list views.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
}

// ParseListParams reads page, pageSize and q from the query string.
func ParseListParams(c *fiber.Ctx) ListParams {
	return ListParams{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", pagination.DefaultPageSize),
		Search:   c.Query("q"),
	}
}

// QueryBool parses an optional boolean filter, nil means "no filter".
func QueryBool(c *fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &value
}

// ParamID parses the :id route parameter.
func ParamID(c *fiber.Ctx) (uint64, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return id, true
}

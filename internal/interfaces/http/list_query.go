package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain/pagination"
)

// SearchParam nombre del parámetro de búsqueda libre.
const SearchParam = "search"

// listQuery lee ?search y ?page; los enlaces de paginación repiten la búsqueda activa.
func listQuery(c *fiber.Ctx) dto.ListQuery {
	search := strings.TrimSpace(c.Query(SearchParam))
	params := url.Values{}
	if search != "" {
		params.Set(SearchParam, search)
	}
	return dto.ListQuery{
		Search: search,
		Page: pagination.Request{
			Page:   c.QueryInt(pagination.PageParam, 1),
			Path:   c.BaseURL() + c.Path(),
			Params: params,
		},
	}
}

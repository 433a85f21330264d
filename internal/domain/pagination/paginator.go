// Package pagination corta listados en páginas de tamaño fijo y arma los enlaces conservando el filtro activo.
package pagination

import (
	"math"
	"net/url"
	"strconv"
)

// PerPage tamaño de página de todos los listados.
const PerPage = 10

// PageParam nombre del parámetro de query que lleva la página.
const PageParam = "page"

// MaxPage página más alta que se acepta; por encima el desplazamiento desborda int.
const MaxPage = math.MaxInt/PerPage + 1

// Links enlaces de navegación. Prev/Next son nil cuando no existe esa página.
type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// Meta metadatos de una página.
type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int   `json:"total"`
	LastPage    int   `json:"last_page"`
	From        int   `json:"from"`
	To          int   `json:"to"`
	Links       Links `json:"links"`
}

// Request página pedida más la ruta y los parámetros que deben repetirse en los enlaces.
type Request struct {
	Page   int
	Path   string
	Params url.Values
}

// Normalize acota page a [1, MaxPage]. Una página más allá de la última sigue siendo válida y sale vacía.
func Normalize(page int) int {
	if page < 1 {
		return 1
	}
	return min(page, MaxPage)
}

// Offset devuelve el desplazamiento SQL de la página.
func Offset(page int) int {
	return (Normalize(page) - 1) * PerPage
}

// NewMeta arma los metadatos para un resultado ya paginado por el almacén.
func NewMeta(total int, req Request) Meta {
	page := Normalize(req.Page)
	last := (total + PerPage - 1) / PerPage
	if last < 1 {
		last = 1
	}

	m := Meta{
		CurrentPage: page,
		PerPage:     PerPage,
		Total:       total,
		LastPage:    last,
		Links: Links{
			First: pageURL(req, 1),
			Last:  pageURL(req, last),
		},
	}
	if start := Offset(page); start < total {
		m.From = start + 1
		m.To = start + PerPage
		if m.To > total {
			m.To = total
		}
	}
	if page > 1 {
		prev := pageURL(req, min(page-1, last))
		m.Links.Prev = &prev
	}
	if page < last {
		next := pageURL(req, page+1)
		m.Links.Next = &next
	}
	return m
}

func pageURL(req Request, page int) string {
	q := url.Values{}
	for k, vs := range req.Params {
		if k == PageParam {
			continue
		}
		q[k] = append([]string(nil), vs...)
	}
	q.Set(PageParam, strconv.Itoa(page))
	return req.Path + "?" + q.Encode()
}

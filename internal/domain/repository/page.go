package repository

import "github.com/jhoicas/Backoffice-api/internal/domain/pagination"

// Page ventana de resultados pedida al almacén.
type Page struct {
	Limit  int
	Offset int
}

// PageFor traduce la página pedida por el cliente a la ventana SQL.
func PageFor(req pagination.Request) Page {
	return Page{Limit: pagination.PerPage, Offset: pagination.Offset(req.Page)}
}

// Package query compone el filtro de los listados: búsqueda libre + restricción por dueño según el rol del actor.
// Where lo traduce a la condición SQL que usan los repositorios de Postgres.
package query

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// Criteria filtro de un listado.
type Criteria struct {
	Search string
	Actor  entity.Actor
}

// New construye el filtro. El texto de búsqueda se recorta y se pasa a NFC, la forma en que se guarda el texto;
// vacío equivale a sin filtro.
func New(search string, actor entity.Actor) Criteria {
	return Criteria{Search: norm.NFC.String(strings.TrimSpace(search)), Actor: actor}
}

// HasSearch informa si hay texto de búsqueda.
func (c Criteria) HasSearch() bool {
	return c.Search != ""
}

// Scoped informa si el listado debe limitarse a las filas del actor.
func (c Criteria) Scoped() bool {
	return !c.Actor.IsAdmin()
}

// Table describe cómo se traduce el filtro para una tabla concreta.
type Table struct {
	SearchColumns []string // columnas de texto, combinadas con OR
	OwnerColumn   string   // columna con el id del creador
}

// Where devuelve la condición SQL (sin "WHERE") y sus argumentos, numerados desde $start.
// Sin condiciones devuelve "TRUE".
func (c Criteria) Where(t Table, start int) (string, []any) {
	var conds []string
	var args []any
	n := start

	if c.Scoped() {
		conds = append(conds, fmt.Sprintf("%s = $%d", t.OwnerColumn, n))
		args = append(args, c.Actor.ID)
		n++
	}
	if c.HasSearch() && len(t.SearchColumns) > 0 {
		ors := make([]string, 0, len(t.SearchColumns))
		for _, col := range t.SearchColumns {
			ors = append(ors, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", col, n))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
		args = append(args, escapeLike(c.Search))
	}

	if len(conds) == 0 {
		return "TRUE", nil
	}
	return strings.Join(conds, " AND "), args
}

// escapeLike neutraliza los comodines de LIKE para que la búsqueda sea una subcadena literal.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

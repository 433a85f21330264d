package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/query"
)

// ExtraCashRepository define el puerto de persistencia para ExtraCash (DIP).
type ExtraCashRepository interface {
	Create(ctx context.Context, cash *entity.ExtraCash) error
	GetByID(ctx context.Context, id string) (*entity.ExtraCash, error)
	Update(ctx context.Context, cash *entity.ExtraCash) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, c query.Criteria, page Page) ([]*entity.ExtraCash, int, error)
	// Totals suma entradas y salidas de todas las filas que cumplen el filtro (no sólo la página).
	Totals(ctx context.Context, c query.Criteria) (in, out decimal.Decimal, err error)
}

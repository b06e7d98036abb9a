package port

import (
	"context"

	"github.com/bnema/webfonts/internal/domain/entity"
)

// FontCatalogSource provides the known font catalog.
type FontCatalogSource interface {
	Catalog(ctx context.Context) (*entity.FontCatalog, error)
}

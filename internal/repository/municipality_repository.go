package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/falacidadao/ocorrencias-api/internal/models"
)

// MunicipalityRepository reads the prefeituras lookup table.
type MunicipalityRepository struct {
	db *sqlx.DB
}

// NewMunicipalityRepository constructs the repository.
func NewMunicipalityRepository(db *sqlx.DB) *MunicipalityRepository {
	return &MunicipalityRepository{db: db}
}

// FindByCityState resolves a municipality by its city/state pair.
// Returns nil without error when no row matches.
func (r *MunicipalityRepository) FindByCityState(ctx context.Context, city, state string) (*models.Municipality, error) {
	const query = `SELECT id, cidade, estado FROM prefeituras WHERE cidade = $1 AND estado = $2`

	var m models.Municipality
	if err := r.db.GetContext(ctx, &m, query, city, state); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find municipality: %w", err)
	}
	return &m, nil
}

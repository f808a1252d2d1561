package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/falacidadao/ocorrencias-api/internal/models"
)

// OccurrenceRepository provides persistence for citizen complaints.
type OccurrenceRepository struct {
	db *sqlx.DB
}

// NewOccurrenceRepository constructs the repository.
func NewOccurrenceRepository(db *sqlx.DB) *OccurrenceRepository {
	return &OccurrenceRepository{db: db}
}

// Insert stores a new occurrence and returns the persisted row.
func (r *OccurrenceRepository) Insert(ctx context.Context, occ *models.Occurrence) (*models.Occurrence, error) {
	const query = `
INSERT INTO ocorrencias (id, user_id, prefeitura_id, titulo, descricao, categoria_id, latitude, longitude, endereco, fotos, videos, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id, user_id, prefeitura_id, titulo, descricao, categoria_id, latitude, longitude, endereco, fotos, videos, status, created_at`

	var inserted models.Occurrence
	err := r.db.GetContext(ctx, &inserted, query,
		occ.ID,
		occ.UserID,
		occ.PrefeituraID,
		occ.Titulo,
		occ.Descricao,
		occ.CategoriaID,
		occ.Latitude,
		occ.Longitude,
		occ.Endereco,
		occ.Fotos,
		occ.Videos,
		occ.Status,
		occ.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert occurrence: %w", err)
	}
	return &inserted, nil
}

// ListStatusByMunicipality projects status and creation time for every
// occurrence of the municipality. The dashboard aggregation needs nothing else.
func (r *OccurrenceRepository) ListStatusByMunicipality(ctx context.Context, prefeituraID string) ([]models.OccurrenceStatusRow, error) {
	const query = `SELECT status, created_at FROM ocorrencias WHERE prefeitura_id = $1`

	var rows []models.OccurrenceStatusRow
	if err := r.db.SelectContext(ctx, &rows, query, prefeituraID); err != nil {
		return nil, fmt.Errorf("list occurrence statuses: %w", err)
	}
	return rows, nil
}

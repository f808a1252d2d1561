package models

import (
	"time"

	"github.com/lib/pq"
)

// OccurrenceStatus enumerates the lifecycle of a citizen complaint.
type OccurrenceStatus string

const (
	StatusRecebido      OccurrenceStatus = "recebido"
	StatusEmAnalise     OccurrenceStatus = "em_analise"
	StatusEmAtendimento OccurrenceStatus = "em_atendimento"
	StatusResolvido     OccurrenceStatus = "resolvido"
	StatusRejeitado     OccurrenceStatus = "rejeitado"
)

// AllStatuses lists every status in presentation order.
func AllStatuses() []OccurrenceStatus {
	return []OccurrenceStatus{
		StatusRecebido,
		StatusEmAnalise,
		StatusEmAtendimento,
		StatusResolvido,
		StatusRejeitado,
	}
}

// Occurrence is a citizen-submitted complaint attached to a municipality.
// JSON field names follow the wire contract consumed by the mobile app.
type Occurrence struct {
	ID           string           `db:"id" json:"id"`
	UserID       string           `db:"user_id" json:"user_id"`
	PrefeituraID string           `db:"prefeitura_id" json:"prefeitura_id"`
	Titulo       string           `db:"titulo" json:"titulo"`
	Descricao    string           `db:"descricao" json:"descricao"`
	CategoriaID  *string          `db:"categoria_id" json:"categoria_id,omitempty"`
	Latitude     *float64         `db:"latitude" json:"latitude,omitempty"`
	Longitude    *float64         `db:"longitude" json:"longitude,omitempty"`
	Endereco     *string          `db:"endereco" json:"endereco,omitempty"`
	Fotos        pq.StringArray   `db:"fotos" json:"fotos"`
	Videos       pq.StringArray   `db:"videos" json:"videos"`
	Status       OccurrenceStatus `db:"status" json:"status"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
}

// OccurrenceStatusRow is the projection used by the dashboard aggregation.
type OccurrenceStatusRow struct {
	Status    OccurrenceStatus `db:"status"`
	CreatedAt time.Time        `db:"created_at"`
}

package models

// Municipality identifies the city/state entity occurrences belong to.
type Municipality struct {
	ID     string `db:"id" json:"id"`
	Cidade string `db:"cidade" json:"cidade"`
	Estado string `db:"estado" json:"estado"`
}

package dto

// CreateOccurrenceRequest is the JSON body accepted by the create endpoint.
// Only title and description are mandatory; everything else defaults.
type CreateOccurrenceRequest struct {
	Titulo      string   `json:"titulo" validate:"required"`
	Descricao   string   `json:"descricao" validate:"required"`
	CategoriaID *string  `json:"categoria_id,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Endereco    *string  `json:"endereco,omitempty"`
	Fotos       []string `json:"fotos,omitempty"`
	Videos      []string `json:"videos,omitempty"`
}

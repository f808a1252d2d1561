package dto

// MediaUploadResponse echoes where the uploaded file ended up.
type MediaUploadResponse struct {
	FileName  string `json:"fileName"`
	PublicURL string `json:"publicUrl"`
	Type      string `json:"type"`
}

package dto

import "time"

// AttachmentResponse fila puente de un adjunto.
type AttachmentResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	FileSize   int64     `json:"file_size"`
	UploadedBy string    `json:"uploaded_by"`
	Link       LinkDTO   `json:"link"`
	CreatedAt  time.Time `json:"created_at"`
}

// AttachmentListResponse adjuntos colgados de un padre.
type AttachmentListResponse struct {
	Items []AttachmentResponse `json:"items"`
}

// AttachmentURLResponse URL de descarga temporal del objeto.
type AttachmentURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

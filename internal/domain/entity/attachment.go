package entity

import "time"

// Attachment es la fila puente entre el CRM y el storage de objetos.
// StorageObject es la clave del objeto en el bucket; Link referencia
// exactamente un padre (deal, task o activity).
type Attachment struct {
	ID            string
	TenantID      string
	StorageObject string
	FileName      string
	FileSize      int64
	UploadedBy    string
	Link          RecordLink // deal | task | activity
	CreatedAt     time.Time
}

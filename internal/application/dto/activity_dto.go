package dto

import "time"

// LinkDTO unión etiquetada {kind, target_id}: exactamente un padre.
type LinkDTO struct {
	Kind     string `json:"kind" validate:"required"`
	TargetID string `json:"target_id" validate:"required"`
}

// CreateActivityRequest entrada para registrar una interacción.
type CreateActivityRequest struct {
	Type    string  `json:"type" validate:"required"`
	Content string  `json:"content"`
	Link    LinkDTO `json:"link"`
}

// ActivityResponse salida de una actividad.
type ActivityResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Content    string    `json:"content"`
	Link       LinkDTO   `json:"link"`
}

// ActivityListResponse feed de actividades del tenant.
type ActivityListResponse struct {
	Items []ActivityResponse `json:"items"`
}

package entity

import "time"

// Tipos de actividad registrables.
const (
	ActivityCall    = "call"
	ActivityEmail   = "email"
	ActivityMeeting = "meeting"
	ActivityNote    = "note"
)

// Activity es una interacción registrada (llamada, email, reunión) ligada a
// exactamente un padre de la jerarquía CRM vía RecordLink.
type Activity struct {
	ID         string
	TenantID   string
	Type       string
	ActorID    string
	OccurredAt time.Time
	Content    string
	Link       RecordLink // account | contact | deal
}

package entity

import "github.com/tu-usuario/crm-pro/internal/domain"

// Tipos de padre válidos para vínculos polimórficos.
const (
	LinkKindAccount  = "account"
	LinkKindContact  = "contact"
	LinkKindDeal     = "deal"
	LinkKindTask     = "task"
	LinkKindActivity = "activity"
)

// RecordLink vincula una fila con exactamente UN padre: unión etiquetada
// {kind, target_id} en lugar de varias FKs nullable. El invariante
// "a lo sumo un vínculo" queda garantizado por construcción.
type RecordLink struct {
	Kind     string
	TargetID string
}

// Validate verifica que el vínculo sea completo y que Kind esté entre los permitidos.
func (l RecordLink) Validate(allowedKinds ...string) error {
	if l.Kind == "" || l.TargetID == "" {
		return domain.ErrInvalidLink
	}
	for _, k := range allowedKinds {
		if l.Kind == k {
			return nil
		}
	}
	return domain.ErrInvalidLink
}

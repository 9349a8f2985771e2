package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Los dos contadores salen de consultas paralelas; el resto viene del token.
type DashboardSummaryDTO struct {
	ProjectCount int64 `json:"project_count"`
	TaskCount    int64 `json:"task_count"`

	// Contexto de sesión (leído de los claims, nunca de la DB)
	Permissions         []string `json:"permissions"`
	TenantID            string   `json:"tenant_id"`
	RoleID              string   `json:"role_id"`
	AccessibleRoleCount int      `json:"accessible_role_count"`
}

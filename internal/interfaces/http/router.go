package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/dashboard"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/team"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	DashboardUC  *dashboard.DashboardUseCase
	TeamUC       *team.TeamUseCase
	ProfileUC    *usecase.ProfileUseCase
	ProjectUC    *usecase.ProjectUseCase
	CRMUC        *usecase.CRMUseCase
	ActivityUC   *usecase.ActivityUseCase
	AttachmentUC *usecase.AttachmentUseCase
	Sessions     *session.Store
	JWTSecret    string
}

// Router registra las rutas de la API. Todo lo que no sea login/register
// pasa por AuthMiddleware: token válido + sesión no revocada.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token y sesión viva)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Perfil propio
	profileHandler := NewProfileHandler(deps.ProfileUC)
	protected.Post("/profile/avatar", profileHandler.UploadAvatar)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Team
	teamHandler := NewTeamHandler(deps.TeamUC)
	protected.Get("/team", teamHandler.GetTeam)

	// Projects + tasks
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Get("/", projectHandler.List)
	projects.Post("/", RequirePermission("project:write"), projectHandler.Create)
	projects.Get("/:id", projectHandler.GetDetail)
	projects.Post("/:id/tasks", RequirePermission("task:write"), projectHandler.AddTask)
	projects.Patch("/:id/tasks/:taskId/toggle", RequirePermission("task:write"), projectHandler.ToggleTask)

	// Accounts + contacts
	accounts := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.CRMUC)
	accounts.Get("/", accountHandler.List)
	accounts.Post("/", RequirePermission("account:write"), accountHandler.Create)
	accounts.Get("/:id", accountHandler.GetByID)
	accounts.Get("/:id/contacts", accountHandler.ListContacts)
	accounts.Post("/:id/contacts", RequirePermission("contact:write"), accountHandler.CreateContact)

	// Deals
	deals := protected.Group("/deals")
	dealHandler := NewDealHandler(deps.CRMUC)
	deals.Get("/", dealHandler.List)
	deals.Post("/", RequirePermission("deal:write"), dealHandler.Create)

	// Activities
	activities := protected.Group("/activities")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activities.Get("/", activityHandler.List)
	activities.Post("/", RequirePermission("activity:write"), activityHandler.Create)

	// Attachments
	attachments := protected.Group("/attachments")
	attachmentHandler := NewAttachmentHandler(deps.AttachmentUC)
	attachments.Post("/", RequirePermission("attachment:write"), attachmentHandler.Upload)
	attachments.Get("/", attachmentHandler.ListByLink)
	attachments.Get("/:id/url", attachmentHandler.DownloadURL)

	// Settings: la ruta existe y exige sesión, la vista aún no está construida.
	protected.Get("/settings", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{
			Code: "NOT_IMPLEMENTED", Message: "configuración en construcción",
		})
	})
}

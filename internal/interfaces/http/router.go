package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrovida/produccion-api/internal/application/auth"
	"github.com/agrovida/produccion-api/internal/application/inventory"
	"github.com/agrovida/produccion-api/internal/application/production"
	"github.com/agrovida/produccion-api/internal/application/reports"
	"github.com/agrovida/produccion-api/internal/application/usecase"
	"github.com/agrovida/produccion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TenantUC         *usecase.TenantUseCase
	LocationUC       *usecase.LocationUseCase
	StageUC          *usecase.StageUseCase
	LotUC            *usecase.LotUseCase
	MoveLot          *production.MoveLotUseCase
	Kanban           *production.KanbanUseCase
	Balance          *production.BalanceUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	LotReport        *reports.PDFUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Tenants (público por ahora; el alta de granja precede a la de usuarios)
	tenants := api.Group("/tenants")
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Get("/", tenantHandler.List)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/:id", tenantHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	canWrite := RequireRole(entity.RoleAdmin, entity.RoleOperario)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Catálogo de etapas (protegido; escritura solo admin)
	stages := protected.Group("/stages")
	stageHandler := NewStageHandler(deps.StageUC)
	stages.Get("/", stageHandler.List)
	stages.Post("/", adminOnly, stageHandler.Create)
	stages.Patch("/:id", adminOnly, stageHandler.Update)

	// Lotes (protegido; movimientos de etapa para admin y operario)
	lots := protected.Group("/lots")
	lotHandler := NewLotHandler(deps.LotUC, deps.MoveLot, deps.LotReport)
	lots.Post("/", canWrite, lotHandler.Create)
	lots.Get("/", lotHandler.List)
	lots.Get("/:id", lotHandler.GetByID)
	lots.Patch("/:id", canWrite, lotHandler.Update)
	lots.Post("/:id/move", canWrite, lotHandler.Move)
	lots.Get("/:id/events", lotHandler.ListEvents)
	lots.Get("/:id/report.pdf", lotHandler.Report)

	// Ubicaciones (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", canWrite, locationHandler.Create)
	locations.Get("/", locationHandler.List)

	// Movimientos de cantidades (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	movements.Post("/", canWrite, movementHandler.Register)

	// Proyecciones de lectura (protegido)
	kanbanHandler := NewKanbanHandler(deps.Kanban)
	protected.Get("/kanban", kanbanHandler.GetBoard)
	balanceHandler := NewBalanceHandler(deps.Balance)
	protected.Get("/balances", balanceHandler.GetBalance)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-produccion/internal/application/auth"
	"github.com/tu-usuario/erp-produccion/internal/application/ledger"
	"github.com/tu-usuario/erp-produccion/internal/application/orders"
	"github.com/tu-usuario/erp-produccion/internal/application/reports"
	"github.com/tu-usuario/erp-produccion/internal/application/usecase"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PartnerUC      *usecase.PartnerUseCase
	ProductUC      *usecase.ProductUseCase
	MaterialUC     *usecase.MaterialUseCase
	MachineUC      *usecase.MachineUseCase
	DieCutterUC    *usecase.DieCutterUseCase
	OrderUC        *orders.OrderUseCase
	TransactionUC  *ledger.TransactionUseCase
	BalanceUC      *reports.BalanceUseCase
	RequirementsUC *reports.RequirementsUseCase
	SummaryUC      *reports.SummaryUseCase
	StatementUC    *reports.StatementUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Partners (protegido; delete solo admin)
	partners := protected.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.PartnerUC, deps.BalanceUC, deps.StatementUC)
	partners.Post("/", partnerHandler.Create)
	partners.Get("/", partnerHandler.List)
	partners.Get("/:id", partnerHandler.GetByID)
	partners.Put("/:id", partnerHandler.Update)
	partners.Delete("/:id", adminOnly, partnerHandler.Delete)
	partners.Get("/:id/balance", partnerHandler.GetBalance)
	partners.Get("/:id/statement/pdf", partnerHandler.GetStatementPDF)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Materials (protegido)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", adminOnly, materialHandler.Delete)

	// Machines (protegido)
	machines := protected.Group("/machines")
	machineHandler := NewMachineHandler(deps.MachineUC)
	machines.Post("/", machineHandler.Create)
	machines.Get("/", machineHandler.List)
	machines.Get("/:id", machineHandler.GetByID)
	machines.Put("/:id", machineHandler.Update)
	machines.Delete("/:id", adminOnly, machineHandler.Delete)

	// Die cutters (protegido)
	dieCutters := protected.Group("/diecutters")
	dieCutterHandler := NewDieCutterHandler(deps.DieCutterUC)
	dieCutters.Post("/", dieCutterHandler.Create)
	dieCutters.Get("/", dieCutterHandler.List)
	dieCutters.Get("/:id", dieCutterHandler.GetByID)
	dieCutters.Put("/:id", dieCutterHandler.Update)
	dieCutters.Delete("/:id", adminOnly, dieCutterHandler.Delete)

	// Orders (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.RequirementsUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Patch("/:id/status", orderHandler.UpdateStatus)
	ordersGroup.Delete("/:id", adminOnly, orderHandler.Delete)
	ordersGroup.Get("/:id/requirements", orderHandler.GetRequirements)

	// Transactions (protegido)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", adminOnly, transactionHandler.Delete)

	// Finance (protegido)
	finance := protected.Group("/finance")
	financeHandler := NewFinanceHandler(deps.SummaryUC)
	finance.Get("/summary", financeHandler.GetSummary)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/application/deposit"
	"github.com/jhoicas/Backoffice-api/internal/application/sales"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// Nombres de las secciones que se pueden desactivar desde /api/modules.
const (
	ModuleCompanies  = "companies"
	ModuleCategories = "categories"
	ModuleProducts   = "products"
	ModuleSales      = "sales"
	ModuleDeposits   = "deposits"
	ModuleExtraCash  = "extra-cash"
)

// StoragePrefix ruta pública de los archivos subidos: un logo_path "logos/x.png" se sirve en /storage/logos/x.png.
const StoragePrefix = "/storage"

// MountStorage sirve el directorio de archivos subidos en sólo lectura, sin listado.
func MountStorage(app *fiber.App, root string) {
	app.Static(StoragePrefix, root, fiber.Static{Browse: false, MaxAge: 3600})
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	CategoryUC  *usecase.CategoryUseCase
	ModuleUC    *usecase.ModuleUseCase
	ProductUC   *usecase.ProductUseCase
	ExtraCashUC *usecase.ExtraCashUseCase
	SalesUC     *sales.UseCase
	DepositUC   *deposit.UseCase
	JWTSecret   string
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
	protected.Get("/auth/me", authHandler.Me)

	adminOnly := RequireRole(entity.RoleAdmin)
	section := func(name string) fiber.Handler { return RequireModule(name, deps.ModuleUC) }

	// Modules: lectura para todos, escritura sólo admin
	modules := protected.Group("/modules")
	moduleHandler := NewModuleHandler(deps.ModuleUC)
	modules.Get("/", moduleHandler.List)
	modules.Get("/:id", moduleHandler.GetByID)
	modules.Post("/", adminOnly, moduleHandler.Create)
	modules.Put("/:id", adminOnly, moduleHandler.Update)
	modules.Delete("/:id", adminOnly, moduleHandler.Delete)

	companies := protected.Group("/companies", section(ModuleCompanies))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Post("/:id/logo", companyHandler.UploadLogo)
	companies.Delete("/:id", companyHandler.Delete)

	categories := protected.Group("/categories", section(ModuleCategories))
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := protected.Group("/products", section(ModuleProducts))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/variants/:variantId/stock", productHandler.SetStock)

	salesLists := protected.Group("/sales-lists", section(ModuleSales))
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesLists.Get("/", salesHandler.List)
	salesLists.Post("/", salesHandler.Create)
	salesLists.Get("/:id", salesHandler.Get)
	salesLists.Post("/:id/collect", salesHandler.CollectDue)
	salesLists.Get("/:id/statement", salesHandler.Statement)

	deposits := protected.Group("/deposits", section(ModuleDeposits))
	depositHandler := NewDepositHandler(deps.DepositUC)
	deposits.Get("/", depositHandler.List)
	deposits.Post("/", depositHandler.Create)
	deposits.Post("/:id/approve", adminOnly, depositHandler.Approve)

	extraCash := protected.Group("/extra-cash", section(ModuleExtraCash))
	extraCashHandler := NewExtraCashHandler(deps.ExtraCashUC)
	extraCash.Get("/", extraCashHandler.List)
	extraCash.Post("/", extraCashHandler.Create)
	extraCash.Get("/:id", extraCashHandler.GetByID)
	extraCash.Put("/:id", extraCashHandler.Update)
	extraCash.Delete("/:id", extraCashHandler.Delete)
}

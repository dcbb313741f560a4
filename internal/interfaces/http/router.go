package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marvinbvivass/admin-sub001/internal/application/sales"
	"github.com/marvinbvivass/admin-sub001/internal/application/settlement"
	"github.com/marvinbvivass/admin-sub001/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC   *usecase.ClientUseCase
	VehicleUC  *usecase.VehicleUseCase
	ProductUC  *usecase.ProductUseCase
	RateUC     *usecase.RateUseCase
	CommitSale *sales.CommitSaleUseCase
	CloseDay   *settlement.CloseDayUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todo el API requiere Bearer Token;
// el operador extraído del token viaja explícito a cada caso de uso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Directorio de clientes
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)

	// Vehículos y su carga de stock
	vehicles := api.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Put("/:id/stock", vehicleHandler.LoadStock)
	vehicles.Get("/:id/stock", vehicleHandler.GetStock)

	// Catálogo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Tasas de cambio
	rates := api.Group("/rates")
	rateHandler := NewRateHandler(deps.RateUC)
	rates.Get("/", rateHandler.Get)
	rates.Put("/", rateHandler.Update)

	// Ventas
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.CommitSale)
	salesGroup.Post("/", saleHandler.Commit)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/report", saleHandler.Report)

	// Cierres diarios
	settlements := api.Group("/settlements")
	settlementHandler := NewSettlementHandler(deps.CloseDay)
	settlements.Post("/close", settlementHandler.Close)
	settlements.Get("/:date", settlementHandler.Get)
	settlements.Get("/:date/report", settlementHandler.Report)
}

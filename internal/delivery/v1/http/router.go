package http

import (
	_ "github.com/DRSN-tech/retail-core/docs" // описание API для swagger
	"github.com/DRSN-tech/retail-core/internal/usecase"
	"github.com/DRSN-tech/retail-core/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router  *chi.Mux
	logger  logger.Logger
	limiter *RateLimiter
}

// NewRouter создаёт роутер. limiter может быть nil: тогда продажи не ограничиваются.
func NewRouter(router *chi.Mux, logger logger.Logger, limiter *RateLimiter) *Router {
	return &Router{router: router, logger: logger, limiter: limiter}
}

func (r *Router) Init(storeUC usecase.StoreUC) {
	r.router.Use(PeerAddr, middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		reportHandler := NewReportHandler(storeUC, r.logger)
		v1.Get("/state", reportHandler.getState)
		v1.Get("/reports/dashboard", reportHandler.getDashboard)

		registerProductRoutes(v1, NewProductHandler(storeUC, r.logger))
		registerCustomerRoutes(v1, NewCustomerHandler(storeUC, r.logger))
		registerSaleRoutes(v1, NewSaleHandler(storeUC, r.logger), r.limiter)
		registerSessionRoutes(v1, NewSessionHandler(storeUC, r.logger))
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Post("/", prHandler.addProduct)
		pr.Patch("/{id}", prHandler.updateProduct)
		pr.Delete("/{id}", prHandler.deleteProduct)
	})
}

func registerCustomerRoutes(router chi.Router, cHandler *CustomerHandler) {
	router.Route("/customers", func(cr chi.Router) {
		cr.Get("/", cHandler.listCustomers)
		cr.Post("/", cHandler.addCustomer)
	})
}

func registerSaleRoutes(router chi.Router, sHandler *SaleHandler, limiter *RateLimiter) {
	router.Route("/sales", func(sr chi.Router) {
		sr.Get("/", sHandler.listSales)
		sr.Get("/{invoice}", sHandler.getSale)

		sr.Group(func(limited chi.Router) {
			if limiter != nil {
				limited.Use(limiter.Middleware)
			}
			limited.Post("/", sHandler.recordSale)
			limited.Post("/quote", sHandler.quoteSale)
		})
	})
}

func registerSessionRoutes(router chi.Router, sHandler *SessionHandler) {
	router.Route("/session", func(sr chi.Router) {
		sr.Post("/language", sHandler.toggleLanguage)
		sr.Post("/logout", sHandler.logout)
	})
}

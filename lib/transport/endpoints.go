package transport

import (
	"github.com/invoicehub/invoicehub.go/controllers"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// RegisterEndpoints wires the controllers into the echo server. The
// aggregate dashboard reads go through the view cache; invoice mutations
// release it.
func RegisterEndpoints(svc *service.DashboardService, e *echo.Echo, viewCache *ViewCache, strictRateLimitMiddleware echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	invoiceCtrl := controllers.NewInvoiceController(svc, viewCache.Invalidate)
	dashboardCtrl := controllers.NewDashboardController(svc)
	customerCtrl := controllers.NewCustomerController(svc)

	e.GET("/query", controllers.NewQueryController(svc).ListByAmount, logMw)
	e.GET("/seed", controllers.NewSeedController(svc, viewCache.Invalidate).Seed, strictRateLimitMiddleware, logMw)

	if svc.Config.AllowAccountCreation {
		e.POST("/users", controllers.NewUserController(svc).CreateUser, strictRateLimitMiddleware, logMw)
	}

	dashboard := e.Group("/dashboard", logMw)
	dashboard.GET("/invoices", invoiceCtrl.List)
	dashboard.GET("/invoices/latest", invoiceCtrl.Latest, viewCache.Middleware())
	dashboard.GET("/invoices/:id", invoiceCtrl.Get)
	dashboard.POST("/invoices", invoiceCtrl.Create, strictRateLimitMiddleware)
	dashboard.PUT("/invoices/:id", invoiceCtrl.Update, strictRateLimitMiddleware)
	dashboard.DELETE("/invoices/:id", invoiceCtrl.Delete, strictRateLimitMiddleware)

	dashboard.GET("/cards", dashboardCtrl.Cards, viewCache.Middleware())
	dashboard.GET("/revenue", dashboardCtrl.Revenue, viewCache.Middleware())

	dashboard.GET("/customers", customerCtrl.Filtered)
	dashboard.GET("/customers/options", customerCtrl.Options)
}

// CachedViewPaths are the dashboard reads served through the view cache.
// Invoice mutations invalidate exactly this set.
var CachedViewPaths = []string{
	"/dashboard/invoices/latest",
	"/dashboard/cards",
	"/dashboard/revenue",
}

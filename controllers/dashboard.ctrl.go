package controllers

import (
	"net/http"

	"github.com/invoicehub/invoicehub.go/lib/currency"
	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// DashboardController : aggregate read controller struct
type DashboardController struct {
	svc *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{svc: svc}
}

type CardsResponseBody struct {
	NumberOfInvoices     int    `json:"numberOfInvoices"`
	NumberOfCustomers    int    `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

// Cards returns the dashboard card totals. Status buckets without
// invoices render as $0.00.
func (controller *DashboardController) Cards(c echo.Context) error {
	totals, err := controller.svc.CardData(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to fetch card data: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &CardsResponseBody{
		NumberOfInvoices:     totals.NumberOfInvoices,
		NumberOfCustomers:    totals.NumberOfCustomers,
		TotalPaidInvoices:    currency.FormatCents(totals.PaidCents),
		TotalPendingInvoices: currency.FormatCents(totals.PendingCents),
	})
}

// Revenue returns the precomputed revenue-by-month rows.
func (controller *DashboardController) Revenue(c echo.Context) error {
	revenue, err := controller.svc.FetchRevenue(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to fetch revenue: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, revenue)
}

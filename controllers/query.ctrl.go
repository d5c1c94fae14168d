package controllers

import (
	"net/http"

	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// evilAmount is the demo filter of the /query route.
const evilAmount = 666

// QueryController : demo listing controller struct
type QueryController struct {
	svc *service.DashboardService
}

func NewQueryController(svc *service.DashboardService) *QueryController {
	return &QueryController{svc: svc}
}

// ListByAmount returns every invoice with amount exactly 666 together
// with the customer name.
func (controller *QueryController) ListByAmount(c echo.Context) error {
	rows, err := controller.svc.ListInvoicesByAmount(c.Request().Context(), evilAmount)
	if err != nil {
		c.Logger().Errorf("Failed to list invoices by amount: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, rows)
}

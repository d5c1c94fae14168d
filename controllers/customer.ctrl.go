package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/invoicehub/invoicehub.go/lib/currency"
	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// CustomerController : customer listing controller struct
type CustomerController struct {
	svc *service.DashboardService
}

func NewCustomerController(svc *service.DashboardService) *CustomerController {
	return &CustomerController{svc: svc}
}

type CustomerOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CustomerTableItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

// Options returns id/name pairs for the customer select of the invoice
// form.
func (controller *CustomerController) Options(c echo.Context) error {
	customers, err := controller.svc.Customers(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to fetch customers: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	response := make([]CustomerOption, len(customers))
	for i, customer := range customers {
		response[i] = CustomerOption{ID: customer.ID, Name: customer.Name}
	}
	return c.JSON(http.StatusOK, response)
}

// Filtered returns the customer table with formatted invoice totals.
func (controller *CustomerController) Filtered(c echo.Context) error {
	rows, err := controller.svc.FetchFilteredCustomers(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		c.Logger().Errorf("Failed to fetch customer table: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	response := make([]CustomerTableItem, len(rows))
	for i, row := range rows {
		response[i] = CustomerTableItem{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  currency.FormatCents(row.TotalPending),
			TotalPaid:     currency.FormatCents(row.TotalPaid),
		}
	}
	return c.JSON(http.StatusOK, response)
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/invoicehub/invoicehub.go/common"
	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/invoicehub/invoicehub.go/lib/currency"
	"github.com/invoicehub/invoicehub.go/lib/forms"
	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// InvoiceController : invoice listing and mutation controller struct
type InvoiceController struct {
	svc        *service.DashboardService
	invalidate func()
}

func NewInvoiceController(svc *service.DashboardService, invalidate func()) *InvoiceController {
	if invalidate == nil {
		invalidate = func() {}
	}
	return &InvoiceController{svc: svc, invalidate: invalidate}
}

type InvoiceListItem struct {
	ID       uuid.UUID `json:"id"`
	Amount   int64     `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

type ListInvoicesResponseBody struct {
	Invoices   []InvoiceListItem `json:"invoices"`
	TotalPages int               `json:"total_pages"`
}

type LatestInvoiceItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   string    `json:"amount"`
}

// List returns one page of the filtered invoice listing together with
// the total page count for the same filter.
func (controller *InvoiceController) List(c echo.Context) error {
	query := c.QueryParam("query")
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
		page = parsed
	}

	ctx := c.Request().Context()
	invoices, err := controller.svc.FetchFilteredInvoices(ctx, query, page)
	if err != nil {
		c.Logger().Errorf("Failed to fetch invoices: query:%q page:%d error: %v", query, page, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	totalPages, err := controller.svc.InvoicePages(ctx, query)
	if err != nil {
		c.Logger().Errorf("Failed to count invoices: query:%q error: %v", query, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	response := ListInvoicesResponseBody{
		Invoices:   make([]InvoiceListItem, len(invoices)),
		TotalPages: totalPages,
	}
	for i, invoice := range invoices {
		response.Invoices[i] = newInvoiceListItem(invoice)
	}
	return c.JSON(http.StatusOK, &response)
}

// Latest returns the newest invoices with display-formatted amounts.
func (controller *InvoiceController) Latest(c echo.Context) error {
	invoices, err := controller.svc.LatestInvoices(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to fetch latest invoices: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	response := make([]LatestInvoiceItem, len(invoices))
	for i, invoice := range invoices {
		item := LatestInvoiceItem{
			ID:     invoice.ID,
			Amount: currency.FormatCents(invoice.Amount),
		}
		if invoice.Customer != nil {
			item.Name = invoice.Customer.Name
			item.Email = invoice.Customer.Email
			item.ImageURL = invoice.Customer.ImageURL
		}
		response[i] = item
	}
	return c.JSON(http.StatusOK, response)
}

// Get returns a single invoice in the edit-form shape, with the amount
// converted back to dollars.
func (controller *InvoiceController) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	invoice, err := controller.svc.FindInvoiceByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		c.Logger().Errorf("Failed to fetch invoice: invoice_id:%v error: %v", id, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, invoice)
}

// Create validates the submitted form and inserts a new invoice. On
// success the cached dashboard views are released and the caller is
// redirected to the invoice listing; on failure the field errors come
// back and no navigation happens.
func (controller *InvoiceController) Create(c echo.Context) error {
	params, fieldErrors := forms.ValidateInvoice(invoiceInput(c))
	if fieldErrors != nil {
		return c.JSON(http.StatusBadRequest, &responses.InvoiceState{
			Errors:  fieldErrors,
			Message: "Missing Fields. Failed to Create Invoice.",
		})
	}

	if _, err := controller.svc.CreateInvoice(c.Request().Context(), params); err != nil {
		return c.JSON(http.StatusInternalServerError, &responses.InvoiceState{
			Message: "Database Error: Failed to Create Invoice.",
		})
	}

	controller.invalidate()
	return c.Redirect(http.StatusSeeOther, common.InvoicesListPath)
}

// Update rewrites customer/amount/status of an existing invoice; the
// invoice date stays untouched.
func (controller *InvoiceController) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	params, fieldErrors := forms.ValidateInvoice(invoiceInput(c))
	if fieldErrors != nil {
		return c.JSON(http.StatusBadRequest, &responses.InvoiceState{
			Errors:  fieldErrors,
			Message: "Missing Fields. Failed to Update Invoice.",
		})
	}

	if err := controller.svc.UpdateInvoice(c.Request().Context(), id, params); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrInvoiceNotFound) {
			status = http.StatusNotFound
		}
		return c.JSON(status, &responses.InvoiceState{
			Message: "Database Error: Failed to Update Invoice.",
		})
	}

	controller.invalidate()
	return c.Redirect(http.StatusSeeOther, common.InvoicesListPath)
}

// Delete removes an invoice. Unlike create/update there is no redirect;
// the caller gets the outcome message directly.
func (controller *InvoiceController) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteInvoice(c.Request().Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrInvoiceNotFound) {
			status = http.StatusNotFound
		}
		return c.JSON(status, &responses.InvoiceState{
			Message: "Database Error: Failed to Delete Invoice",
		})
	}

	controller.invalidate()
	return c.JSON(http.StatusOK, &responses.InvoiceState{Message: "Deleted Invoice"})
}

func invoiceInput(c echo.Context) forms.InvoiceInput {
	return forms.InvoiceInput{
		CustomerID: c.FormValue("customerId"),
		Amount:     c.FormValue("amount"),
		Status:     c.FormValue("status"),
	}
}

func newInvoiceListItem(invoice models.Invoice) InvoiceListItem {
	item := InvoiceListItem{
		ID:     invoice.ID,
		Amount: invoice.Amount,
		Date:   invoice.Date,
		Status: invoice.Status,
	}
	if invoice.Customer != nil {
		item.Name = invoice.Customer.Name
		item.Email = invoice.Customer.Email
		item.ImageURL = invoice.Customer.ImageURL
	}
	return item
}

package common

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"

	// Fixed page size of the filtered invoice listing.
	InvoicesPerPage = 6
	// Number of rows returned by the latest-invoices card.
	LatestInvoicesLimit = 5

	// Path of the invoice listing view. Mutations release the cached
	// response for this path and redirect back to it.
	InvoicesListPath = "/dashboard/invoices"
)

func ValidInvoiceStatus(status string) bool {
	return status == InvoiceStatusPending || status == InvoiceStatusPaid
}

package models

// InvoiceResourceRest is the canonical refined invoice record exchanged with
// clients. It is produced by validating an extracted order and is the only
// JSON shape accepted by the create endpoint.
type InvoiceResourceRest struct {
	InvoiceID               int               `json:"InvoiceID"`
	IssueDate               string            `json:"IssueDate"                validate:"required"`
	InvoicePeriod           InvoicePeriodRest `json:"InvoicePeriod"`
	AccountingSupplierParty string            `json:"AccountingSupplierParty"  validate:"required"`
	AccountingCustomerParty string            `json:"AccountingCustomerParty"  validate:"required"`
	LegalMonetaryTotal      MonetaryTotalRest `json:"LegalMonetaryTotal"`
	InvoiceLine             []InvoiceLineRest `json:"InvoiceLine"`
}

// InvoicePeriodRest is the billing period covered by an invoice.
type InvoicePeriodRest struct {
	StartDate string `json:"StartDate" validate:"required"`
	EndDate   string `json:"EndDate"   validate:"required"`
}

// MonetaryTotalRest is the payable amount of an invoice with its currency.
type MonetaryTotalRest struct {
	Value    string `json:"Value"    validate:"required"`
	Currency string `json:"Currency" validate:"required"`
}

// InvoiceLineRest is a single line item on an invoice.
type InvoiceLineRest struct {
	ID          string `json:"ID"          validate:"required"`
	Value       string `json:"Value"       validate:"required"`
	Currency    string `json:"Currency"    validate:"required"`
	Description string `json:"Description" validate:"required"`
}

// InvoiceEditRest is the set of fields an edit request may change. Invoice
// id, monetary total and line items are immutable through the edit path and
// have no counterpart here.
type InvoiceEditRest struct {
	IssueDate               *string            `json:"IssueDate"`
	InvoicePeriod           *InvoicePeriodEdit `json:"InvoicePeriod"`
	AccountingSupplierParty *string            `json:"AccountingSupplierParty"`
	AccountingCustomerParty *string            `json:"AccountingCustomerParty"`
}

// InvoicePeriodEdit carries optional period overrides for an edit request.
type InvoicePeriodEdit struct {
	StartDate *string `json:"StartDate"`
	EndDate   *string `json:"EndDate"`
}

// ValidationErrorsResource is the response body returned when validation
// fails, carrying every problem found in one round trip.
type ValidationErrorsResource struct {
	Errors []string `json:"errors"`
}

package models

// InvoiceResourceDB is the database representation of an invoice record.
type InvoiceResourceDB struct {
	ID        string                `bson:"_id"`
	InvoiceID int                   `bson:"invoice_id"`
	Data      InvoiceResourceDataDB `bson:"data"`
}

// InvoiceResourceDataDB is the data of an invoice record in the database.
type InvoiceResourceDataDB struct {
	IssueDate               string          `bson:"issue_date"`
	PeriodStartDate         string          `bson:"period_start_date"`
	PeriodEndDate           string          `bson:"period_end_date"`
	AccountingSupplierParty string          `bson:"accounting_supplier_party"`
	AccountingCustomerParty string          `bson:"accounting_customer_party"`
	TotalValue              string          `bson:"total_value"`
	TotalCurrency           string          `bson:"total_currency"`
	Lines                   []InvoiceLineDB `bson:"lines"`
}

// InvoiceLineDB is a single invoice line in the database.
type InvoiceLineDB struct {
	ID          string `bson:"id"`
	Value       string `bson:"value"`
	Currency    string `bson:"currency"`
	Description string `bson:"description"`
}

package dao

import "github.com/a-kuchuk/seng2021/models"

// DAO is an interface for accessing invoice records in a backend store
type DAO interface {
	CreateInvoiceResource(invoiceResource *models.InvoiceResourceDB) error
	GetInvoiceResource(invoiceID int) (*models.InvoiceResourceDB, error)
	ReplaceInvoiceResource(invoiceID int, invoiceResource *models.InvoiceResourceDB) error
	DeleteInvoiceResource(invoiceID int) (bool, error)
}

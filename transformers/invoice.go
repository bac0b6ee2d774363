// Package transformers converts invoice resource data between rest and
// database models.
package transformers

import (
	"github.com/a-kuchuk/seng2021/models"
)

// Transformer is an interface for all transformer implementations to implement
type Transformer interface {
	TransformToDB(interface{}) interface{}
	TransformToRest(interface{}) interface{}
}

// InvoiceTransformer transforms invoice resource data between rest and database models
type InvoiceTransformer struct{}

// TransformToDB transforms invoice resource rest model into invoice resource database model
func (it InvoiceTransformer) TransformToDB(rest models.InvoiceResourceRest) models.InvoiceResourceDB {
	invoiceResourceData := models.InvoiceResourceDataDB{
		IssueDate:               rest.IssueDate,
		PeriodStartDate:         rest.InvoicePeriod.StartDate,
		PeriodEndDate:           rest.InvoicePeriod.EndDate,
		AccountingSupplierParty: rest.AccountingSupplierParty,
		AccountingCustomerParty: rest.AccountingCustomerParty,
		TotalValue:              rest.LegalMonetaryTotal.Value,
		TotalCurrency:           rest.LegalMonetaryTotal.Currency,
	}

	for _, line := range rest.InvoiceLine {
		invoiceResourceData.Lines = append(invoiceResourceData.Lines, models.InvoiceLineDB(line))
	}

	return models.InvoiceResourceDB{
		InvoiceID: rest.InvoiceID,
		Data:      invoiceResourceData,
	}
}

// TransformToRest transforms invoice resource database model into invoice resource rest model
func (it InvoiceTransformer) TransformToRest(dbResource models.InvoiceResourceDB) models.InvoiceResourceRest {
	invoiceResource := models.InvoiceResourceRest{
		InvoiceID: dbResource.InvoiceID,
		IssueDate: dbResource.Data.IssueDate,
		InvoicePeriod: models.InvoicePeriodRest{
			StartDate: dbResource.Data.PeriodStartDate,
			EndDate:   dbResource.Data.PeriodEndDate,
		},
		AccountingSupplierParty: dbResource.Data.AccountingSupplierParty,
		AccountingCustomerParty: dbResource.Data.AccountingCustomerParty,
		LegalMonetaryTotal: models.MonetaryTotalRest{
			Value:    dbResource.Data.TotalValue,
			Currency: dbResource.Data.TotalCurrency,
		},
	}

	for _, line := range dbResource.Data.Lines {
		invoiceResource.InvoiceLine = append(invoiceResource.InvoiceLine, models.InvoiceLineRest(line))
	}

	return invoiceResource
}

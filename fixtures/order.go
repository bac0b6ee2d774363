// Package fixtures provides shared test data for the order and invoice
// pipeline tests.
package fixtures

import (
	"fmt"

	"github.com/a-kuchuk/seng2021/models"
)

// orderXMLTemplate is a minimal UBL order document with substitution points
// for the order id, issue date, line amount and line description.
const orderXMLTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<Order xmlns:cbc="urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2" xmlns:cac="urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2" xmlns="urn:oasis:names:specification:ubl:schema:xsd:Order-2">
	<cbc:UBLVersionID>2.0</cbc:UBLVersionID>
	<cbc:ID>%s</cbc:ID>
	<cbc:IssueDate>%s</cbc:IssueDate>
	<cac:BuyerCustomerParty>
		<cac:Party>
			<cac:PartyName>
				<cbc:Name>IYT Corporation</cbc:Name>
			</cac:PartyName>
		</cac:Party>
	</cac:BuyerCustomerParty>
	<cac:SellerSupplierParty>
		<cac:Party>
			<cac:PartyName>
				<cbc:Name>Consortial</cbc:Name>
			</cac:PartyName>
		</cac:Party>
	</cac:SellerSupplierParty>
	<cac:Delivery>
		<cac:RequestedDeliveryPeriod>
			<cbc:StartDate>2005-06-29</cbc:StartDate>
			<cbc:EndDate>2005-06-29</cbc:EndDate>
		</cac:RequestedDeliveryPeriod>
	</cac:Delivery>
	<cac:AnticipatedMonetaryTotal>
		<cbc:PayableAmount currencyID="GBP">%s</cbc:PayableAmount>
	</cac:AnticipatedMonetaryTotal>
	<cac:OrderLine>
		<cac:LineItem>
			<cbc:ID>1</cbc:ID>
			<cbc:LineExtensionAmount currencyID="GBP">%s</cbc:LineExtensionAmount>
			<cac:Item>
				<cbc:Description>%s</cbc:Description>
			</cac:Item>
		</cac:LineItem>
	</cac:OrderLine>
</Order>`

// GetOrderXML returns a well-formed UBL order document with the given order
// id and issue date, carrying one Acme beeswax line of 100.00 GBP.
func GetOrderXML(orderID, issueDate string) string {
	return fmt.Sprintf(orderXMLTemplate, orderID, issueDate, "100.00", "100.00", "Acme beeswax")
}

// GetValidOrderXML returns the canonical valid order fixture.
func GetValidOrderXML() string {
	return GetOrderXML("AEG012345", "2005-06-20")
}

// GetInvoiceResource returns a valid refined invoice record with two CAD
// lines summing to the given totals.
func GetInvoiceResource(invoiceID int) models.InvoiceResourceRest {
	return models.InvoiceResourceRest{
		InvoiceID: invoiceID,
		IssueDate: "2011-09-22",
		InvoicePeriod: models.InvoicePeriodRest{
			StartDate: "2011-08-01",
			EndDate:   "2011-08-31",
		},
		AccountingSupplierParty: "Custom Cotter Pins",
		AccountingCustomerParty: "North American Veeblefetzer",
		LegalMonetaryTotal: models.MonetaryTotalRest{
			Value:    "150.00",
			Currency: "CAD",
		},
		InvoiceLine: []models.InvoiceLineRest{
			{ID: "1", Value: "100.00", Currency: "CAD", Description: "Cotter pin, MIL-SPEC"},
			{ID: "2", Value: "50.00", Currency: "CAD", Description: "Cotter thread, MIL-SPEC"},
		},
	}
}

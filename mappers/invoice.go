package mappers

import (
	"strconv"

	"github.com/a-kuchuk/seng2021/models"
	"github.com/a-kuchuk/seng2021/xmltree"
)

// UBL 2 namespaces declared on every generated invoice document.
const (
	NamespaceInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NamespaceCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NamespaceCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// MapInvoiceToTree builds the UBL invoice element tree for a validated
// invoice record. Children are emitted in the order the UBL invoice schema
// expects: id, issue date, period, parties, monetary total, then one
// InvoiceLine per record line in record order.
func MapInvoiceToTree(rest models.InvoiceResourceRest) *xmltree.Node {
	invoice := xmltree.NewNode("Invoice").
		SetAttr("xmlns", NamespaceInvoice).
		SetAttr("xmlns:cac", NamespaceCac).
		SetAttr("xmlns:cbc", NamespaceCbc)

	invoice.AddChild("cbc:ID").SetText(strconv.Itoa(rest.InvoiceID))
	invoice.AddChild("cbc:IssueDate").SetText(rest.IssueDate)

	period := invoice.AddChild("cac:InvoicePeriod")
	period.AddChild("cbc:StartDate").SetText(rest.InvoicePeriod.StartDate)
	period.AddChild("cbc:EndDate").SetText(rest.InvoicePeriod.EndDate)

	addParty(invoice, "cac:AccountingSupplierParty", rest.AccountingSupplierParty)
	addParty(invoice, "cac:AccountingCustomerParty", rest.AccountingCustomerParty)

	total := invoice.AddChild("cac:LegalMonetaryTotal")
	total.AddChild("cbc:PayableAmount").
		SetAttr("currencyID", rest.LegalMonetaryTotal.Currency).
		SetText(rest.LegalMonetaryTotal.Value)

	for _, line := range rest.InvoiceLine {
		invoiceLine := invoice.AddChild("cac:InvoiceLine")
		invoiceLine.AddChild("cbc:ID").SetText(line.ID)
		invoiceLine.AddChild("cbc:LineExtensionAmount").
			SetAttr("currencyID", line.Currency).
			SetText(line.Value)
		invoiceLine.AddChild("cac:Item").
			AddChild("cbc:Description").SetText(line.Description)
	}

	return invoice
}

func addParty(invoice *xmltree.Node, tag, name string) {
	invoice.AddChild(tag).
		AddChild("cac:Party").
		AddChild("cac:PartyName").
		AddChild("cbc:Name").SetText(name)
}

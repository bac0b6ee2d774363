package service

import (
	"encoding/json"
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"

	"github.com/a-kuchuk/seng2021/config"
	"github.com/a-kuchuk/seng2021/dao"
	"github.com/a-kuchuk/seng2021/mappers"
	"github.com/a-kuchuk/seng2021/models"
	"github.com/a-kuchuk/seng2021/transformers"
	"github.com/a-kuchuk/seng2021/xmltree"
)

// Indent unit used for generated invoice XML.
const invoiceIndent = "\t"

// editableFields are the record fields the generic edit path may change.
// Everything else on the record is immutable once created.
var editableFields = map[string]struct{}{
	"IssueDate":               {},
	"InvoicePeriod":           {},
	"AccountingSupplierParty": {},
	"AccountingCustomerParty": {},
}

// InvoiceService contains the DAO for db access
type InvoiceService struct {
	DAO    dao.DAO
	Config config.Config
}

// CreateInvoice persists a validated invoice record and returns the
// generated UBL invoice XML.
func (service *InvoiceService) CreateInvoice(rest *models.InvoiceResourceRest) (string, ResponseType, error) {
	if rest.InvoiceID == 0 {
		rest.InvoiceID = DefaultInvoiceID()
	}

	existing, err := service.DAO.GetInvoiceResource(rest.InvoiceID)
	if err != nil {
		err = fmt.Errorf("error checking for existing invoice: [%v]", err)
		log.Error(err)
		return "", Error, err
	}
	if existing != nil {
		return "", InvalidData, fmt.Errorf("invoice [%d] already exists", rest.InvoiceID)
	}

	invoiceResource := transformers.InvoiceTransformer{}.TransformToDB(*rest)
	invoiceResource.ID = uuid.NewString()

	if err = service.DAO.CreateInvoiceResource(&invoiceResource); err != nil {
		err = fmt.Errorf("error storing invoice resource: [%v]", err)
		log.Error(err)
		return "", Error, err
	}

	return service.RenderInvoice(rest), Success, nil
}

// GetInvoice retrieves a stored invoice record by invoice id.
func (service *InvoiceService) GetInvoice(invoiceID int) (*models.InvoiceResourceRest, ResponseType, error) {
	invoiceResource, err := service.DAO.GetInvoiceResource(invoiceID)
	if err != nil {
		err = fmt.Errorf("error getting invoice resource: [%v]", err)
		log.Error(err)
		return nil, Error, err
	}
	if invoiceResource == nil {
		return nil, NotFound, nil
	}

	rest := transformers.InvoiceTransformer{}.TransformToRest(*invoiceResource)
	return &rest, Success, nil
}

// RenderInvoice serializes an invoice record as pretty-printed UBL XML.
func (service *InvoiceService) RenderInvoice(rest *models.InvoiceResourceRest) string {
	return xmltree.Serialize(mappers.MapInvoiceToTree(*rest), invoiceIndent)
}

// EditInvoice applies a partial update to an invoice record and persists the
// result. Edits never mutate the current record: a copy with overrides is
// built, stored and returned. Attempts to change an immutable field are
// rejected rather than ignored.
func (service *InvoiceService) EditInvoice(current *models.InvoiceResourceRest, updateJSON []byte) (*models.InvoiceResourceRest, ResponseType, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(updateJSON, &raw); err != nil {
		return nil, InvalidData, fmt.Errorf("error decoding edit request: [%v]", err)
	}
	if len(raw) == 0 {
		return nil, InvalidData, fmt.Errorf("missing or invalid input data")
	}

	for field := range raw {
		if _, ok := editableFields[field]; !ok {
			return nil, InvalidData, fmt.Errorf("field [%s] is not editable", field)
		}
	}

	var update models.InvoiceEditRest
	if err := json.Unmarshal(updateJSON, &update); err != nil {
		return nil, InvalidData, fmt.Errorf("error decoding edit request: [%v]", err)
	}

	updated := *current
	if update.IssueDate != nil {
		updated.IssueDate = *update.IssueDate
	}
	if update.InvoicePeriod != nil {
		if update.InvoicePeriod.StartDate != nil {
			updated.InvoicePeriod.StartDate = *update.InvoicePeriod.StartDate
		}
		if update.InvoicePeriod.EndDate != nil {
			updated.InvoicePeriod.EndDate = *update.InvoicePeriod.EndDate
		}
	}
	if update.AccountingSupplierParty != nil {
		updated.AccountingSupplierParty = *update.AccountingSupplierParty
	}
	if update.AccountingCustomerParty != nil {
		updated.AccountingCustomerParty = *update.AccountingCustomerParty
	}

	if err := checkEditedDates(&updated); err != nil {
		return nil, InvalidData, err
	}

	invoiceResource := transformers.InvoiceTransformer{}.TransformToDB(updated)
	if err := service.DAO.ReplaceInvoiceResource(current.InvoiceID, &invoiceResource); err != nil {
		err = fmt.Errorf("error updating invoice resource: [%v]", err)
		log.Error(err)
		return nil, Error, err
	}

	return &updated, Success, nil
}

// ReplaceInvoice persists a fully-specified record over the stored one with
// the same invoice id.
func (service *InvoiceService) ReplaceInvoice(rest *models.InvoiceResourceRest) (ResponseType, error) {
	invoiceResource := transformers.InvoiceTransformer{}.TransformToDB(*rest)
	if err := service.DAO.ReplaceInvoiceResource(rest.InvoiceID, &invoiceResource); err != nil {
		err = fmt.Errorf("error updating invoice resource: [%v]", err)
		log.Error(err)
		return Error, err
	}
	return Success, nil
}

// DeleteInvoice removes a stored invoice record.
func (service *InvoiceService) DeleteInvoice(invoiceID int) (ResponseType, error) {
	deleted, err := service.DAO.DeleteInvoiceResource(invoiceID)
	if err != nil {
		err = fmt.Errorf("error deleting invoice resource: [%v]", err)
		log.Error(err)
		return Error, err
	}
	if !deleted {
		return NotFound, nil
	}
	return Success, nil
}

func checkEditedDates(rest *models.InvoiceResourceRest) error {
	dates := []struct {
		name  string
		value string
	}{
		{"Issue Date", rest.IssueDate},
		{"Invoice Start Date", rest.InvoicePeriod.StartDate},
		{"Invoice End Date", rest.InvoicePeriod.EndDate},
	}
	for _, d := range dates {
		if !isValidDate(d.value) {
			return fmt.Errorf("Invalid date format for %s: must be YYYY-MM-DD", d.name)
		}
	}
	return nil
}

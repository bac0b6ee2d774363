package service

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/a-kuchuk/seng2021/mappers"
	"github.com/a-kuchuk/seng2021/models"
)

const dateLayout = "2006-01-02"

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// ValidateOrder checks an extracted order through two sequential gates and
// builds the refined invoice record. Gate one checks that every required
// field is present and short-circuits: if anything is missing, the semantic
// checks never run and the missing-field errors are returned on their own.
// Gate two checks formats, ordering and codes, accumulating errors across
// all line items rather than stopping at the first bad line. The supplied
// invoiceID is assigned to the record; it is never read from the document.
func ValidateOrder(order mappers.ExtractedOrder, invoiceID int) (*models.InvoiceResourceRest, []string) {
	if errs := checkPresence(order); len(errs) > 0 {
		return nil, errs
	}

	if errs := checkSemantics(order); len(errs) > 0 {
		return nil, errs
	}

	return buildRecord(order, invoiceID), nil
}

// checkPresence is the first validation gate: every required field that
// resolved to nothing appends a missing-field error.
func checkPresence(order mappers.ExtractedOrder) []string {
	required := []struct {
		name  string
		field mappers.Field
	}{
		{"Issue Date", order.IssueDate},
		{"Invoice Start Date", order.PeriodStart},
		{"Invoice End Date", order.PeriodEnd},
		{"Supplier Name", order.SupplierName},
		{"Customer Name", order.CustomerName},
		{"Total Amount", order.TotalValue},
		{"Currency Code", order.TotalCurrency},
	}

	var errs []string
	for _, req := range required {
		if req.field.Missing() {
			errs = append(errs, fmt.Sprintf("Missing field: %s", req.name))
		}
	}

	for i, line := range order.Lines {
		lineFields := []struct {
			name  string
			field mappers.Field
		}{
			{fmt.Sprintf("Item %d ID", i+1), line.ID},
			{fmt.Sprintf("Item %d Value", i+1), line.Value},
			{fmt.Sprintf("Item %d Currency", i+1), line.Currency},
			{fmt.Sprintf("Item %d Description", i+1), line.Description},
		}
		for _, req := range lineFields {
			if req.field.Missing() {
				errs = append(errs, fmt.Sprintf("Missing field: %s", req.name))
			}
		}
	}

	return errs
}

// checkSemantics is the second validation gate, reached only when gate one
// found every required field present.
func checkSemantics(order mappers.ExtractedOrder) []string {
	var errs []string

	startDate, err := checkDate(order.PeriodStart, "Invoice Start Date")
	if err != nil {
		errs = append(errs, err.Error())
	}
	endDate, err := checkDate(order.PeriodEnd, "Invoice End Date")
	if err != nil {
		errs = append(errs, err.Error())
	}
	if _, err = checkDate(order.IssueDate, "Issue Date"); err != nil {
		errs = append(errs, err.Error())
	}

	if !startDate.IsZero() && !endDate.IsZero() && endDate.Before(startDate) {
		errs = append(errs, "Invoice end date must not be earlier than start date")
	}

	if _, ok := order.SupplierName.String(); !ok {
		errs = append(errs, "Supplier Name must be a string")
	}
	if _, ok := order.CustomerName.String(); !ok {
		errs = append(errs, "Customer Name must be a string")
	}

	if code, ok := order.TotalCurrency.String(); !ok || !IsRecognisedCurrency(code) {
		errs = append(errs, fmt.Sprintf("Unrecognised currency code: %s", NormaliseCurrency(stringOrEmpty(order.TotalCurrency))))
	}

	if !isDecimal(order.TotalValue) {
		errs = append(errs, "Total Amount must be a decimal number")
	}

	// Line errors accumulate across every line; a bad line never hides the
	// lines after it.
	for i, line := range order.Lines {
		n := i + 1
		if id, ok := line.ID.String(); !ok || !digitsOnly.MatchString(id) {
			errs = append(errs, fmt.Sprintf("Item %d: ID must contain digits only", n))
		}
		if !isDecimal(line.Value) {
			errs = append(errs, fmt.Sprintf("Item %d: Value must be a decimal number", n))
		}
		if code, ok := line.Currency.String(); !ok || !IsRecognisedCurrency(code) {
			errs = append(errs, fmt.Sprintf("Item %d: unrecognised currency code: %s", n, NormaliseCurrency(stringOrEmpty(line.Currency))))
		}
		if _, ok := line.Description.String(); !ok {
			errs = append(errs, fmt.Sprintf("Item %d: Description must be a string", n))
		}
	}

	return errs
}

func buildRecord(order mappers.ExtractedOrder, invoiceID int) *models.InvoiceResourceRest {
	record := &models.InvoiceResourceRest{
		InvoiceID: invoiceID,
		IssueDate: stringOrEmpty(order.IssueDate),
		InvoicePeriod: models.InvoicePeriodRest{
			StartDate: stringOrEmpty(order.PeriodStart),
			EndDate:   stringOrEmpty(order.PeriodEnd),
		},
		AccountingSupplierParty: stringOrEmpty(order.SupplierName),
		AccountingCustomerParty: stringOrEmpty(order.CustomerName),
		LegalMonetaryTotal: models.MonetaryTotalRest{
			Value:    stringOrEmpty(order.TotalValue),
			Currency: NormaliseCurrency(stringOrEmpty(order.TotalCurrency)),
		},
	}

	for _, line := range order.Lines {
		record.InvoiceLine = append(record.InvoiceLine, models.InvoiceLineRest{
			ID:          stringOrEmpty(line.ID),
			Value:       stringOrEmpty(line.Value),
			Currency:    NormaliseCurrency(stringOrEmpty(line.Currency)),
			Description: stringOrEmpty(line.Description),
		})
	}

	return record
}

// checkDate parses a date field strictly as YYYY-MM-DD.
func checkDate(field mappers.Field, name string) (time.Time, error) {
	value, ok := field.String()
	if ok && isValidDate(value) {
		parsed, _ := time.Parse(dateLayout, value)
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("Invalid date format for %s: must be YYYY-MM-DD", name)
}

// isValidDate reports whether value is a strict YYYY-MM-DD date. The
// round-trip comparison guards against the lenient single-digit forms
// time.Parse accepts.
func isValidDate(value string) bool {
	parsed, err := time.Parse(dateLayout, value)
	return err == nil && parsed.Format(dateLayout) == value
}

func isDecimal(field mappers.Field) bool {
	value, ok := field.String()
	if !ok {
		return false
	}
	_, err := decimal.NewFromString(value)
	return err == nil
}

func stringOrEmpty(field mappers.Field) string {
	value, _ := field.String()
	return value
}

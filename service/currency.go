package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/a-kuchuk/seng2021/models"
)

// RateProvider is an interface for external exchange-rate lookups.
type RateProvider interface {
	Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error)
}

// CurrencyService rewrites the monetary fields of an invoice record to a
// target currency using an external rate provider.
type CurrencyService struct {
	Provider RateProvider
}

// ConvertInvoiceCurrency converts every line of the record to the target
// currency, rounding each converted line to two decimal places, and derives
// the new total as the arithmetic sum of the converted lines rather than
// converting the original total directly. Summing rounded lines can differ
// from a direct conversion by rounding; the sum-of-lines figure is the one
// the record carries. Per-line failures accumulate and do not stop the
// remaining lines from being processed.
func (service *CurrencyService) ConvertInvoiceCurrency(rest *models.InvoiceResourceRest, targetCurrency string) (*models.InvoiceResourceRest, []string, ResponseType, error) {
	if !IsRecognisedCurrency(targetCurrency) {
		return nil, nil, InvalidData, fmt.Errorf("unrecognised currency code: %s", NormaliseCurrency(targetCurrency))
	}
	target := NormaliseCurrency(targetCurrency)
	source := rest.LegalMonetaryTotal.Currency

	updated := *rest
	updated.InvoiceLine = make([]models.InvoiceLineRest, len(rest.InvoiceLine))
	copy(updated.InvoiceLine, rest.InvoiceLine)

	var errs []string
	total := decimal.Zero

	for i, line := range updated.InvoiceLine {
		amount, err := decimal.NewFromString(line.Value)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Item %d: value [%s] is not a decimal number", i+1, line.Value))
			continue
		}

		converted, err := service.Provider.Convert(amount, source, target)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Item %d: error converting to %s: [%v]", i+1, target, err))
			continue
		}

		rounded := converted.Round(2)
		updated.InvoiceLine[i].Value = rounded.StringFixed(2)
		updated.InvoiceLine[i].Currency = target
		total = total.Add(rounded)
	}

	if len(errs) > 0 {
		return nil, errs, InvalidData, nil
	}

	updated.LegalMonetaryTotal = models.MonetaryTotalRest{
		Value:    total.StringFixed(2),
		Currency: target,
	}

	return &updated, nil, Success, nil
}

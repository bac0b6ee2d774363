package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/a-kuchuk/seng2021/helpers"
	"github.com/a-kuchuk/seng2021/models"
	"github.com/a-kuchuk/seng2021/service"
	"github.com/a-kuchuk/seng2021/utils"
)

// CurrencyRequest is the body of a currency conversion request
type CurrencyRequest struct {
	Currency string `json:"currency" validate:"required"`
}

// HandleConvertCurrency converts every monetary field of the invoice record
// from request context to the requested currency and persists the result
func HandleConvertCurrency(w http.ResponseWriter, req *http.Request) {
	// get invoice resource from context, put there by InvoiceInterceptor
	invoice, ok := req.Context().Value(helpers.ContextKeyInvoice).(*models.InvoiceResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid InvoiceResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var currencyRequest CurrencyRequest
	if err := json.NewDecoder(req.Body).Decode(&currencyRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if currencyRequest.Currency == "" {
		log.ErrorR(req, fmt.Errorf("no target currency supplied for invoice [%d]", invoice.InvoiceID))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("No target currency supplied"), http.StatusBadRequest)
		return
	}

	converted, conversionErrs, responseType, err := currencyService.ConvertInvoiceCurrency(invoice, currencyRequest.Currency)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error converting invoice currency: [%v]", err))
		switch responseType {
		case service.InvalidData:
			utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if len(conversionErrs) > 0 {
		log.ErrorR(req, fmt.Errorf("invoice [%d] currency conversion reported [%d] errors", invoice.InvoiceID, len(conversionErrs)))
		utils.WriteJSONWithStatus(w, req, models.ValidationErrorsResource{Errors: conversionErrs}, http.StatusBadRequest)
		return
	}

	if _, err = invoiceService.ReplaceInvoice(converted); err != nil {
		log.ErrorR(req, fmt.Errorf("error persisting converted invoice: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "Successful PUT request to convert invoice currency", log.Data{"invoice_id": converted.InvoiceID, "currency": converted.LegalMonetaryTotal.Currency})
	utils.WriteJSONWithStatus(w, req, converted, http.StatusOK)
}

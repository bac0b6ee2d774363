// Package interceptors provides middleware that runs before the route
// handlers.
package interceptors

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/a-kuchuk/seng2021/helpers"
	"github.com/a-kuchuk/seng2021/service"
)

// InvoiceInterceptor contains the invoice service used in the interceptor
type InvoiceInterceptor struct {
	Service *service.InvoiceService
}

// InvoiceIntercept loads the invoice record referenced by the invoice_id
// path variable into the request context before the handler runs, so every
// by-id route shares the same lookup and not-found behaviour.
func (invoiceInterceptor InvoiceInterceptor) InvoiceIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id := vars["invoice_id"]
		if id == "" {
			log.ErrorR(r, fmt.Errorf("InvoiceInterceptor error: no invoice id"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		invoiceID, err := strconv.Atoi(id)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("InvoiceInterceptor error: invoice id [%s] is not numeric", id))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		invoice, responseType, err := invoiceInterceptor.Service.GetInvoice(invoiceID)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("InvoiceInterceptor error when retrieving invoice: [%v]", err), log.Data{"service_response_type": responseType.String()})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if responseType == service.NotFound {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		// Store the invoice in context to use later in the handler
		ctx := context.WithValue(r.Context(), helpers.ContextKeyInvoice, invoice)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"gopkg.in/go-playground/validator.v9"

	"github.com/a-kuchuk/seng2021/helpers"
	"github.com/a-kuchuk/seng2021/models"
	"github.com/a-kuchuk/seng2021/service"
	"github.com/a-kuchuk/seng2021/utils"
)

// HandleCreateInvoice stores a validated invoice record and responds with
// the generated UBL invoice XML
func HandleCreateInvoice(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("JSON string is empty"), http.StatusBadRequest)
		return
	}

	contents, err := io.ReadAll(req.Body)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading request body: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if strings.TrimSpace(string(contents)) == "" {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("JSON string is empty"), http.StatusBadRequest)
		return
	}

	var document map[string]json.RawMessage
	if err = json.Unmarshal(contents, &document); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Invalid JSON format"), http.StatusBadRequest)
		return
	}
	if len(document) == 0 {
		log.ErrorR(req, fmt.Errorf("request body parsed to an empty document"))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Parsed JSON is empty"), http.StatusBadRequest)
		return
	}

	var incomingInvoiceResource models.InvoiceResourceRest
	if err = json.Unmarshal(contents, &incomingInvoiceResource); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Invalid JSON format"), http.StatusBadRequest)
		return
	}

	if err = validateInvoiceCreate(incomingInvoiceResource); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create invoice: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), http.StatusBadRequest)
		return
	}

	invoiceXML, responseType, err := invoiceService.CreateInvoice(&incomingInvoiceResource)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating invoice resource: [%v]", err))
		switch responseType {
		case service.InvalidData:
			utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	log.InfoR(req, "Successful POST request for new invoice resource", log.Data{"invoice_id": incomingInvoiceResource.InvoiceID, "status": http.StatusCreated})
	utils.WriteXMLWithStatus(w, req, invoiceXML, http.StatusCreated)
}

func validateInvoiceCreate(incomingInvoiceResource models.InvoiceResourceRest) error {
	validate := validator.New()
	return validate.Struct(incomingInvoiceResource)
}

// HandleGetInvoice renders the invoice record from request context as UBL
// invoice XML
func HandleGetInvoice(w http.ResponseWriter, req *http.Request) {
	// get invoice resource from context, put there by InvoiceInterceptor
	invoice, ok := req.Context().Value(helpers.ContextKeyInvoice).(*models.InvoiceResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid InvoiceResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "Successful GET request for invoice resource", log.Data{"invoice_id": invoice.InvoiceID})
	utils.WriteXMLWithStatus(w, req, invoiceService.RenderInvoice(invoice), http.StatusOK)
}

// HandleEditInvoice applies a partial update to the invoice record from
// request context and responds with the updated UBL invoice XML
func HandleEditInvoice(w http.ResponseWriter, req *http.Request) {
	invoice, ok := req.Context().Value(helpers.ContextKeyInvoice).(*models.InvoiceResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid InvoiceResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Missing or invalid input data"), http.StatusBadRequest)
		return
	}

	contents, err := io.ReadAll(req.Body)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading request body: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	updated, responseType, err := invoiceService.EditInvoice(invoice, contents)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error editing invoice resource: [%v]", err))
		switch responseType {
		case service.InvalidData:
			utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	log.InfoR(req, "Successful PUT request for invoice resource", log.Data{"invoice_id": updated.InvoiceID, "status": http.StatusOK})
	utils.WriteXMLWithStatus(w, req, invoiceService.RenderInvoice(updated), http.StatusOK)
}

// HandleDeleteInvoice removes the invoice record referenced by the request
func HandleDeleteInvoice(w http.ResponseWriter, req *http.Request) {
	invoice, ok := req.Context().Value(helpers.ContextKeyInvoice).(*models.InvoiceResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid InvoiceResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	responseType, err := invoiceService.DeleteInvoice(invoice.InvoiceID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error deleting invoice resource: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if responseType == service.NotFound {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	log.InfoR(req, "Successful DELETE request for invoice resource", log.Data{"invoice_id": invoice.InvoiceID, "status": http.StatusNoContent})
	w.WriteHeader(http.StatusNoContent)
}

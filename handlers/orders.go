package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/companieshouse/chs.go/log"

	"github.com/a-kuchuk/seng2021/models"
	"github.com/a-kuchuk/seng2021/service"
	"github.com/a-kuchuk/seng2021/utils"
)

// HandleUploadOrder accepts a UBL order document as a multipart upload and
// returns the order id found directly inside the Order root
func HandleUploadOrder(w http.ResponseWriter, req *http.Request) {
	file, header, err := req.FormFile("file")
	if err != nil {
		log.ErrorR(req, fmt.Errorf("no file provided: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("No file provided"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !isXMLUpload(header.Filename, header.Header.Get("Content-Type")) {
		log.ErrorR(req, fmt.Errorf("uploaded file [%s] is not XML", header.Filename))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("File must be an XML file"), http.StatusBadRequest)
		return
	}

	contents, err := io.ReadAll(file)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading uploaded file: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if len(contents) == 0 {
		log.ErrorR(req, fmt.Errorf("uploaded file [%s] is empty", header.Filename))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Empty file"), http.StatusBadRequest)
		return
	}

	orderID, responseType, err := orderService.ExtractOrderID(contents)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error extracting order id: [%v]", err))
		switch responseType {
		case service.NotFound:
			utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Order ID not found"), http.StatusBadRequest)
		default:
			utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Invalid XML format"), http.StatusBadRequest)
		}
		return
	}

	log.InfoR(req, "Successful POST request for order document upload", log.Data{"order_id": orderID})
	utils.WriteJSONWithStatus(w, req, map[string]string{"order_id": orderID}, http.StatusOK)
}

// HandleParseOrder converts a UBL order XML body into its JSON tree
// representation
func HandleParseOrder(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	contents, err := io.ReadAll(req.Body)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading request body: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	parsed, _, err := orderService.ParseOrder(contents)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error parsing order document: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Invalid XML file"), http.StatusBadRequest)
		return
	}

	utils.WriteJSONWithStatus(w, req, parsed, http.StatusOK)
}

// HandleValidateOrder validates a parsed order JSON body and returns either
// the refined invoice record or the full list of validation errors
func HandleValidateOrder(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	contents, err := io.ReadAll(req.Body)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading request body: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	record, validationErrs, _, err := orderService.RefineOrder(contents)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error refining order: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Invalid JSON data"), http.StatusBadRequest)
		return
	}

	if len(validationErrs) > 0 {
		utils.WriteJSONWithStatus(w, req, models.ValidationErrorsResource{Errors: validationErrs}, http.StatusOK)
		return
	}

	log.InfoR(req, "Successful POST request to validate order", log.Data{"invoice_id": record.InvoiceID})
	utils.WriteJSONWithStatus(w, req, record, http.StatusOK)
}

func isXMLUpload(filename, contentType string) bool {
	if strings.EqualFold(filepath.Ext(filename), ".xml") {
		return true
	}
	return contentType == "text/xml" || contentType == "application/xml"
}

package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/a-kuchuk/seng2021/config"
	"github.com/a-kuchuk/seng2021/mappers"
	"github.com/a-kuchuk/seng2021/models"
	"github.com/a-kuchuk/seng2021/xmltree"
)

// OrderService handles parsing, extraction and validation of UBL order
// documents.
type OrderService struct {
	Config config.Config

	// NextInvoiceID supplies the invoice id assigned at validation time.
	// Ids are never read from the order document.
	NextInvoiceID func() int
}

var invoiceCounter = time.Now().Unix() & 0xFFFF

// DefaultInvoiceID returns process-locally unique invoice ids from a
// monotonic counter seeded from the clock.
func DefaultInvoiceID() int {
	return int(atomic.AddInt64(&invoiceCounter, 1))
}

// ParseOrder converts a UBL order XML document into the nested mapping
// representation, preserving namespace prefixes literally.
func (service *OrderService) ParseOrder(body []byte) (map[string]interface{}, ResponseType, error) {
	root, err := xmltree.Parse(body)
	if err != nil {
		return nil, InvalidData, fmt.Errorf("error parsing order document: [%v]", err)
	}
	return root.ToMap(), Success, nil
}

// ExtractOrderID pulls the order identifier from directly inside the Order
// root of an uploaded document. A missing or blank id is InvalidData, not a
// parse failure.
func (service *OrderService) ExtractOrderID(body []byte) (string, ResponseType, error) {
	root, err := xmltree.Parse(body)
	if err != nil {
		return "", InvalidData, fmt.Errorf("error parsing order document: [%v]", err)
	}

	idNode := root.First("cbc:ID")
	if idNode == nil || strings.TrimSpace(idNode.Text) == "" {
		return "", NotFound, fmt.Errorf("order ID not found in document")
	}

	return idNode.Text, Success, nil
}

// RefineOrder extracts the invoice fields from a parsed order mapping and
// validates the result. It returns either the refined record or the full
// list of validation errors.
func (service *OrderService) RefineOrder(orderJSON []byte) (*models.InvoiceResourceRest, []string, ResponseType, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(orderJSON, &doc); err != nil {
		return nil, nil, InvalidData, fmt.Errorf("error decoding order JSON: [%v]", err)
	}

	extracted := mappers.ExtractOrder(doc)

	nextID := service.NextInvoiceID
	if nextID == nil {
		nextID = DefaultInvoiceID
	}

	record, validationErrs := ValidateOrder(extracted, nextID())
	if len(validationErrs) > 0 {
		return nil, validationErrs, InvalidData, nil
	}

	return record, nil, Success, nil
}

// Package mappers maps between the parsed order document shape, the rest
// invoice model and the UBL invoice tree.
package mappers

// Field is an optionally-present value pulled out of a parsed order
// document. A path that is missing at any level, or that resolves to an
// empty element, yields an absent Field rather than an error; validation
// decides what absence means.
type Field struct {
	raw     interface{}
	present bool
}

// Missing reports whether the field was absent from the source document.
func (f Field) Missing() bool {
	return !f.present
}

// String returns the field as a scalar string. The second return is false
// when the field is absent or resolved to a container instead of a scalar,
// which happens when a path lands on an element with child elements.
func (f Field) String() (string, bool) {
	if !f.present {
		return "", false
	}
	s, ok := f.raw.(string)
	return s, ok
}

// ExtractedOrder is the flat set of business fields pulled from a UBL order
// document, prior to validation.
type ExtractedOrder struct {
	IssueDate     Field
	PeriodStart   Field
	PeriodEnd     Field
	SupplierName  Field
	CustomerName  Field
	TotalValue    Field
	TotalCurrency Field
	Lines         []ExtractedLine
}

// ExtractedLine is a single order line pulled from the document.
type ExtractedLine struct {
	ID          Field
	Value       Field
	Currency    Field
	Description Field
}

// ExtractOrder walks the parsed order mapping produced by xmltree.ToMap and
// pulls out the fixed set of invoice fields. OrderLine appearing zero, one
// or many times normalizes to a list of the same length.
func ExtractOrder(doc map[string]interface{}) ExtractedOrder {
	order := lookup(doc, "Order")

	extracted := ExtractedOrder{
		IssueDate:     lookup(order.raw, "cbc:IssueDate"),
		PeriodStart:   lookup(order.raw, "cac:Delivery", "cac:RequestedDeliveryPeriod", "cbc:StartDate"),
		PeriodEnd:     lookup(order.raw, "cac:Delivery", "cac:RequestedDeliveryPeriod", "cbc:EndDate"),
		SupplierName:  lookup(order.raw, "cac:SellerSupplierParty", "cac:Party", "cac:PartyName", "cbc:Name"),
		CustomerName:  lookup(order.raw, "cac:BuyerCustomerParty", "cac:Party", "cac:PartyName", "cbc:Name"),
		TotalValue:    lookup(order.raw, "cac:AnticipatedMonetaryTotal", "cbc:PayableAmount", "#text"),
		TotalCurrency: lookup(order.raw, "cac:AnticipatedMonetaryTotal", "cbc:PayableAmount", "@currencyID"),
	}

	for _, orderLine := range asList(lookup(order.raw, "cac:OrderLine")) {
		lineItem := lookup(orderLine, "cac:LineItem")
		extracted.Lines = append(extracted.Lines, ExtractedLine{
			ID:          lookup(lineItem.raw, "cbc:ID"),
			Value:       lookup(lineItem.raw, "cbc:LineExtensionAmount", "#text"),
			Currency:    lookup(lineItem.raw, "cbc:LineExtensionAmount", "@currencyID"),
			Description: lookup(lineItem.raw, "cac:Item", "cbc:Description"),
		})
	}

	return extracted
}

// lookup descends the nested mapping one key at a time. A missing key, a
// non-mapping intermediate value or a nil leaf all resolve to an absent
// Field.
func lookup(value interface{}, path ...string) Field {
	current := value
	for _, key := range path {
		mapping, ok := current.(map[string]interface{})
		if !ok {
			return Field{}
		}
		current, ok = mapping[key]
		if !ok {
			return Field{}
		}
	}
	if current == nil {
		return Field{}
	}
	return Field{raw: current, present: true}
}

// asList normalizes a field that may hold zero, one or many elements.
func asList(f Field) []interface{} {
	if !f.present {
		return nil
	}
	if list, ok := f.raw.([]interface{}); ok {
		return list
	}
	return []interface{}{f.raw}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/a-kuchuk/seng2021/fixtures"
	"github.com/a-kuchuk/seng2021/models"
	"github.com/a-kuchuk/seng2021/service"
)

func orderUploadRequest(t *testing.T, filename, contents string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = part.Write([]byte(contents)); err != nil {
		t.Fatal(err)
	}
	if err = writer.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/ubl/order/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resource struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resource); err != nil {
		t.Fatal(err)
	}
	return resource.Message
}

func TestUnitHandleUploadOrder(t *testing.T) {
	orderService = &service.OrderService{}

	Convey("Given an order document upload", t, func() {
		Convey("When no file is attached", func() {
			req := httptest.NewRequest("POST", "/ubl/order/upload", nil)
			w := httptest.NewRecorder()

			HandleUploadOrder(w, req)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeMessage(t, w), ShouldEqual, "No file provided")
		})

		Convey("When the file is not XML", func() {
			w := httptest.NewRecorder()

			HandleUploadOrder(w, orderUploadRequest(t, "order.pdf", "%PDF-1.4"))

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeMessage(t, w), ShouldEqual, "File must be an XML file")
		})

		Convey("When the file is empty", func() {
			w := httptest.NewRecorder()

			HandleUploadOrder(w, orderUploadRequest(t, "order.xml", ""))

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeMessage(t, w), ShouldEqual, "Empty file")
		})

		Convey("When the file is not well-formed XML", func() {
			w := httptest.NewRecorder()

			HandleUploadOrder(w, orderUploadRequest(t, "order.xml", "<Order><cbc:ID>1</Order>"))

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeMessage(t, w), ShouldEqual, "Invalid XML format")
		})

		Convey("When the document has no order id", func() {
			w := httptest.NewRecorder()

			HandleUploadOrder(w, orderUploadRequest(t, "order.xml", fixtures.GetOrderXML("", "2005-06-20")))

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeMessage(t, w), ShouldEqual, "Order ID not found")
		})

		Convey("When the document is a valid order", func() {
			w := httptest.NewRecorder()

			HandleUploadOrder(w, orderUploadRequest(t, "order.xml", fixtures.GetValidOrderXML()))

			So(w.Code, ShouldEqual, http.StatusOK)

			var response map[string]string
			So(json.NewDecoder(w.Body).Decode(&response), ShouldBeNil)
			So(response["order_id"], ShouldEqual, "AEG012345")
		})
	})
}

func TestUnitHandleParseOrder(t *testing.T) {
	orderService = &service.OrderService{}

	Convey("Given an order document body", t, func() {
		Convey("When the body is a valid order", func() {
			req := httptest.NewRequest("POST", "/ubl/order/parse", bytes.NewBufferString(fixtures.GetValidOrderXML()))
			w := httptest.NewRecorder()

			HandleParseOrder(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)

			var parsed map[string]interface{}
			So(json.NewDecoder(w.Body).Decode(&parsed), ShouldBeNil)
			order, ok := parsed["Order"].(map[string]interface{})
			So(ok, ShouldBeTrue)
			So(order["cbc:ID"], ShouldEqual, "AEG012345")
		})

		Convey("When the body is not well-formed XML", func() {
			req := httptest.NewRequest("POST", "/ubl/order/parse", bytes.NewBufferString("not xml at all"))
			w := httptest.NewRecorder()

			HandleParseOrder(w, req)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeMessage(t, w), ShouldEqual, "Invalid XML file")
		})
	})
}

func TestUnitHandleValidateOrder(t *testing.T) {
	orderService = &service.OrderService{NextInvoiceID: func() int { return 42 }}

	parsedOrderJSON := func(t *testing.T, orderXML string) []byte {
		t.Helper()
		parsed, _, err := orderService.ParseOrder([]byte(orderXML))
		if err != nil {
			t.Fatal(err)
		}
		encoded, err := json.Marshal(parsed)
		if err != nil {
			t.Fatal(err)
		}
		return encoded
	}

	Convey("Given a parsed order body", t, func() {
		Convey("When the order is valid", func() {
			req := httptest.NewRequest("POST", "/ubl/order/validate", bytes.NewBuffer(parsedOrderJSON(t, fixtures.GetValidOrderXML())))
			w := httptest.NewRecorder()

			HandleValidateOrder(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)

			var record models.InvoiceResourceRest
			So(json.NewDecoder(w.Body).Decode(&record), ShouldBeNil)
			So(record.InvoiceID, ShouldEqual, 42)
			So(record.AccountingSupplierParty, ShouldEqual, "Consortial")
		})

		Convey("When the order fails validation", func() {
			req := httptest.NewRequest("POST", "/ubl/order/validate", bytes.NewBuffer(parsedOrderJSON(t, fixtures.GetOrderXML("AEG012345", ""))))
			w := httptest.NewRecorder()

			HandleValidateOrder(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)

			var errorsResource models.ValidationErrorsResource
			So(json.NewDecoder(w.Body).Decode(&errorsResource), ShouldBeNil)
			So(errorsResource.Errors, ShouldResemble, []string{"Missing field: Issue Date"})
		})

		Convey("When the body is not JSON", func() {
			req := httptest.NewRequest("POST", "/ubl/order/validate", bytes.NewBufferString("not json"))
			w := httptest.NewRecorder()

			HandleValidateOrder(w, req)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeMessage(t, w), ShouldEqual, "Invalid JSON data")
		})
	})
}

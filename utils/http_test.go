package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitWriteJSONWithStatus(t *testing.T) {
	Convey("Given a response resource", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		WriteJSONWithStatus(w, req, NewMessageResponse("order not found"), http.StatusNotFound)

		Convey("Then the resource is written as JSON with the supplied status", func() {
			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
			So(w.Body.String(), ShouldEqual, "{\"message\":\"order not found\"}\n")
		})
	})
}

func TestUnitWriteXMLWithStatus(t *testing.T) {
	Convey("Given a serialized XML document", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		WriteXMLWithStatus(w, req, "<Invoice><cbc:ID>123</cbc:ID></Invoice>", http.StatusCreated)

		Convey("Then the document is written verbatim with the supplied status", func() {
			So(w.Code, ShouldEqual, http.StatusCreated)
			So(w.Header().Get("Content-Type"), ShouldEqual, "application/xml; charset=utf-8")
			So(w.Body.String(), ShouldEqual, "<Invoice><cbc:ID>123</cbc:ID></Invoice>")
		})
	})
}

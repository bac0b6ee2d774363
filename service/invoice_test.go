package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/a-kuchuk/seng2021/dao"
	"github.com/a-kuchuk/seng2021/fixtures"
	"github.com/a-kuchuk/seng2021/models"
	"github.com/a-kuchuk/seng2021/transformers"
)

func TestUnitCreateInvoice(t *testing.T) {
	Convey("Given a validated invoice record", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		invoiceService := &InvoiceService{DAO: mockDAO}

		rest := fixtures.GetInvoiceResource(123)

		Convey("When no invoice with that id exists", func() {
			mockDAO.EXPECT().GetInvoiceResource(123).Return(nil, nil)

			var stored *models.InvoiceResourceDB
			mockDAO.EXPECT().CreateInvoiceResource(gomock.Any()).DoAndReturn(
				func(invoiceResource *models.InvoiceResourceDB) error {
					stored = invoiceResource
					return nil
				})

			invoiceXML, responseType, err := invoiceService.CreateInvoice(&rest)

			Convey("Then the record is stored under a generated record id", func() {
				So(err, ShouldBeNil)
				So(responseType, ShouldEqual, Success)
				So(stored, ShouldNotBeNil)
				So(stored.ID, ShouldNotBeBlank)
				So(stored.InvoiceID, ShouldEqual, 123)
				So(stored.Data.AccountingSupplierParty, ShouldEqual, "Custom Cotter Pins")
			})

			Convey("Then the generated XML carries the invoice fields", func() {
				So(invoiceXML, ShouldStartWith, `<?xml version="1.0" encoding="UTF-8"?>`)
				So(invoiceXML, ShouldContainSubstring, "<cbc:ID>123</cbc:ID>")
				So(invoiceXML, ShouldContainSubstring, "Custom Cotter Pins")
				So(invoiceXML, ShouldContainSubstring, "North American Veeblefetzer")
			})
		})

		Convey("When an invoice with that id already exists", func() {
			existing := transformers.InvoiceTransformer{}.TransformToDB(rest)
			mockDAO.EXPECT().GetInvoiceResource(123).Return(&existing, nil)

			_, responseType, err := invoiceService.CreateInvoice(&rest)

			Convey("Then the create is rejected", func() {
				So(responseType, ShouldEqual, InvalidData)
				So(err.Error(), ShouldEqual, "invoice [123] already exists")
			})
		})

		Convey("When the duplicate check fails", func() {
			mockDAO.EXPECT().GetInvoiceResource(123).Return(nil, fmt.Errorf("connection reset"))

			_, responseType, err := invoiceService.CreateInvoice(&rest)

			Convey("Then the failure is surfaced", func() {
				So(responseType, ShouldEqual, Error)
				So(err.Error(), ShouldEqual, "error checking for existing invoice: [connection reset]")
			})
		})

		Convey("When the record has no invoice id", func() {
			unnumbered := fixtures.GetInvoiceResource(0)
			mockDAO.EXPECT().GetInvoiceResource(gomock.Any()).Return(nil, nil)
			mockDAO.EXPECT().CreateInvoiceResource(gomock.Any()).Return(nil)

			_, responseType, err := invoiceService.CreateInvoice(&unnumbered)

			Convey("Then an id is assigned before storing", func() {
				So(err, ShouldBeNil)
				So(responseType, ShouldEqual, Success)
				So(unnumbered.InvoiceID, ShouldNotEqual, 0)
			})
		})
	})
}

func TestUnitGetInvoice(t *testing.T) {
	Convey("Given a stored invoice record", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		invoiceService := &InvoiceService{DAO: mockDAO}

		Convey("When the record exists", func() {
			stored := transformers.InvoiceTransformer{}.TransformToDB(fixtures.GetInvoiceResource(123))
			mockDAO.EXPECT().GetInvoiceResource(123).Return(&stored, nil)

			rest, responseType, err := invoiceService.GetInvoice(123)

			So(err, ShouldBeNil)
			So(responseType, ShouldEqual, Success)
			So(rest.InvoiceID, ShouldEqual, 123)
			So(rest.AccountingCustomerParty, ShouldEqual, "North American Veeblefetzer")
		})

		Convey("When no record exists", func() {
			mockDAO.EXPECT().GetInvoiceResource(123).Return(nil, nil)

			rest, responseType, err := invoiceService.GetInvoice(123)

			So(err, ShouldBeNil)
			So(responseType, ShouldEqual, NotFound)
			So(rest, ShouldBeNil)
		})

		Convey("When the lookup fails", func() {
			mockDAO.EXPECT().GetInvoiceResource(123).Return(nil, fmt.Errorf("connection reset"))

			_, responseType, err := invoiceService.GetInvoice(123)

			So(responseType, ShouldEqual, Error)
			So(err.Error(), ShouldEqual, "error getting invoice resource: [connection reset]")
		})
	})
}

func TestUnitEditInvoice(t *testing.T) {
	Convey("Given a stored invoice record", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		invoiceService := &InvoiceService{DAO: mockDAO}

		current := fixtures.GetInvoiceResource(123)

		Convey("When editable fields are updated", func() {
			mockDAO.EXPECT().ReplaceInvoiceResource(123, gomock.Any()).Return(nil)

			update := []byte(`{"IssueDate":"2011-10-01","AccountingSupplierParty":"Consortial"}`)
			updated, responseType, err := invoiceService.EditInvoice(&current, update)

			Convey("Then the returned record carries the overrides", func() {
				So(err, ShouldBeNil)
				So(responseType, ShouldEqual, Success)
				So(updated.IssueDate, ShouldEqual, "2011-10-01")
				So(updated.AccountingSupplierParty, ShouldEqual, "Consortial")
				So(updated.AccountingCustomerParty, ShouldEqual, "North American Veeblefetzer")
			})

			Convey("Then the current record is left untouched", func() {
				So(current.IssueDate, ShouldEqual, "2011-09-22")
				So(current.AccountingSupplierParty, ShouldEqual, "Custom Cotter Pins")
			})
		})

		Convey("When one period date is updated", func() {
			mockDAO.EXPECT().ReplaceInvoiceResource(123, gomock.Any()).Return(nil)

			update := []byte(`{"InvoicePeriod":{"EndDate":"2011-09-30"}}`)
			updated, responseType, err := invoiceService.EditInvoice(&current, update)

			So(err, ShouldBeNil)
			So(responseType, ShouldEqual, Success)
			So(updated.InvoicePeriod.StartDate, ShouldEqual, current.InvoicePeriod.StartDate)
			So(updated.InvoicePeriod.EndDate, ShouldEqual, "2011-09-30")
		})

		Convey("When an immutable field is in the update", func() {
			update := []byte(`{"InvoiceLine":[]}`)
			updated, responseType, err := invoiceService.EditInvoice(&current, update)

			So(updated, ShouldBeNil)
			So(responseType, ShouldEqual, InvalidData)
			So(err.Error(), ShouldEqual, "field [InvoiceLine] is not editable")
		})

		Convey("When an updated date is malformed", func() {
			update := []byte(`{"IssueDate":"01-10-2011"}`)
			updated, responseType, err := invoiceService.EditInvoice(&current, update)

			So(updated, ShouldBeNil)
			So(responseType, ShouldEqual, InvalidData)
			So(err.Error(), ShouldEqual, "Invalid date format for Issue Date: must be YYYY-MM-DD")
		})

		Convey("When the update body is empty", func() {
			updated, responseType, err := invoiceService.EditInvoice(&current, []byte(`{}`))

			So(updated, ShouldBeNil)
			So(responseType, ShouldEqual, InvalidData)
			So(err.Error(), ShouldEqual, "missing or invalid input data")
		})

		Convey("When the update body is not JSON", func() {
			_, responseType, err := invoiceService.EditInvoice(&current, []byte(`not json`))

			So(responseType, ShouldEqual, InvalidData)
			So(strings.HasPrefix(err.Error(), "error decoding edit request"), ShouldBeTrue)
		})
	})
}

func TestUnitDeleteInvoice(t *testing.T) {
	Convey("Given a stored invoice record", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		invoiceService := &InvoiceService{DAO: mockDAO}

		Convey("When the record exists", func() {
			mockDAO.EXPECT().DeleteInvoiceResource(123).Return(true, nil)

			responseType, err := invoiceService.DeleteInvoice(123)

			So(err, ShouldBeNil)
			So(responseType, ShouldEqual, Success)
		})

		Convey("When no record exists", func() {
			mockDAO.EXPECT().DeleteInvoiceResource(123).Return(false, nil)

			responseType, err := invoiceService.DeleteInvoice(123)

			So(err, ShouldBeNil)
			So(responseType, ShouldEqual, NotFound)
		})

		Convey("When the delete fails", func() {
			mockDAO.EXPECT().DeleteInvoiceResource(123).Return(false, fmt.Errorf("connection reset"))

			responseType, err := invoiceService.DeleteInvoice(123)

			So(responseType, ShouldEqual, Error)
			So(err.Error(), ShouldEqual, "error deleting invoice resource: [connection reset]")
		})
	})
}

func TestUnitReplaceInvoice(t *testing.T) {
	Convey("Given a converted invoice record", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDAO := dao.NewMockDAO(mockCtrl)
		invoiceService := &InvoiceService{DAO: mockDAO}

		rest := fixtures.GetInvoiceResource(123)

		Convey("When the replace succeeds", func() {
			mockDAO.EXPECT().ReplaceInvoiceResource(123, gomock.Any()).Return(nil)

			responseType, err := invoiceService.ReplaceInvoice(&rest)

			So(err, ShouldBeNil)
			So(responseType, ShouldEqual, Success)
		})

		Convey("When the replace fails", func() {
			mockDAO.EXPECT().ReplaceInvoiceResource(123, gomock.Any()).Return(fmt.Errorf("connection reset"))

			responseType, err := invoiceService.ReplaceInvoice(&rest)

			So(responseType, ShouldEqual, Error)
			So(err.Error(), ShouldEqual, "error updating invoice resource: [connection reset]")
		})
	})
}

package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/a-kuchuk/seng2021/config"
	"github.com/a-kuchuk/seng2021/dao"
	"github.com/a-kuchuk/seng2021/interceptors"
	"github.com/a-kuchuk/seng2021/service"
)

var orderService *service.OrderService
var invoiceService *service.InvoiceService
var currencyService *service.CurrencyService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	m := dao.NewMongoService(cfg.MongoDBURL, cfg.Database, cfg.Collection)

	orderService = &service.OrderService{
		Config:        cfg,
		NextInvoiceID: service.DefaultInvoiceID,
	}

	invoiceService = &service.InvoiceService{
		DAO:    m,
		Config: cfg,
	}

	currencyService = &service.CurrencyService{
		Provider: &service.ExchangeRateClient{Config: cfg},
	}

	ii := &interceptors.InvoiceInterceptor{
		Service: invoiceService,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// order endpoints operate on uploaded documents and need no interceptor
	orderRouter := mainRouter.PathPrefix("/ubl/order").Subrouter()
	orderRouter.HandleFunc("/upload", HandleUploadOrder).Methods("POST").Name("upload-order")
	orderRouter.HandleFunc("/parse", HandleParseOrder).Methods("POST").Name("parse-order")
	orderRouter.HandleFunc("/validate", HandleValidateOrder).Methods("POST").Name("validate-order")

	// create-invoice should not be intercepted by the invoice interceptor, so needs to be it's own subrouter
	createInvoiceRouter := mainRouter.PathPrefix("/ubl/invoice/create").Subrouter()
	createInvoiceRouter.HandleFunc("", HandleCreateInvoice).Methods("POST").Name("create-invoice")

	// by-id invoice endpoints share the invoice lookup interceptor
	invoiceRouter := mainRouter.PathPrefix("/ubl/invoice/{invoice_id:[0-9]+}").Subrouter()
	invoiceRouter.HandleFunc("", HandleGetInvoice).Methods("GET").Name("get-invoice")
	invoiceRouter.HandleFunc("", HandleEditInvoice).Methods("PUT").Name("edit-invoice")
	invoiceRouter.HandleFunc("", HandleDeleteInvoice).Methods("DELETE").Name("delete-invoice")
	invoiceRouter.HandleFunc("/currency", HandleConvertCurrency).Methods("PUT").Name("convert-invoice-currency")

	// Set middleware for subrouters
	orderRouter.Use(log.Handler)
	createInvoiceRouter.Use(log.Handler)
	invoiceRouter.Use(log.Handler, ii.InvoiceIntercept)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

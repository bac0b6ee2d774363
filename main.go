package main

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"

	"github.com/a-kuchuk/seng2021/config"
	"github.com/a-kuchuk/seng2021/handlers"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
)

func main() {
	log.Namespace = "seng2021-invoice-api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	router := mux.NewRouter()
	chain := alice.New()

	handlers.Register(router, *cfg)

	log.Info("Starting seng2021 invoice service")
	err = http.ListenAndServe(cfg.BindAddr, chain.Then(router))

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting seng2021 invoice service")
}

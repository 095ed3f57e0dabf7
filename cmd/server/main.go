package main

import (
	"log"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/di"

	_ "go.uber.org/automaxprocs"
)

//	@title			APP de Turismo API
//	@version		1.0
//	@description	Tourism point-of-interest search over OpenStreetMap data for the regions of Argentina.

//	@host		localhost:6060
//	@BasePath	/

func main() {
	server, cleanup, err := di.InitializeSearcherService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := server.Wait(); err != nil {
		server.Log.Error(err.Error())
	}
}

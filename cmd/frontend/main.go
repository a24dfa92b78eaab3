package main

import (
	"dashboard/logger"
	"dashboard/ui"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

func main() {
	if err := logger.Init("debug"); err != nil {
		panic(err)
	}

	ui.RegisterRoutes()

	app.RunWhenOnBrowser()
}

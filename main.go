package main

import (
	"os"

	"github.com/devfolio/devfolio/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

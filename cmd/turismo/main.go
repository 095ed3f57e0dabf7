package main

import (
	"os"

	"github.com/danisdan-stack/APP-de-Turismo/cmd/turismo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

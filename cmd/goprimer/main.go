package main

import (
	"os"

	"github.com/goprimer/goprimer/cmd/goprimer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"skiptrace/cmd/skiptrace/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

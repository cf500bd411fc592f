package main

import (
	"os"

	"github.com/tszlabs/archlint/internal/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

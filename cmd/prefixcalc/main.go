package main

import (
	"os"

	"github.com/mathpine/go-prefixeval/cmd/prefixcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

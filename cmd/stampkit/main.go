package main

import (
	"os"

	"github.com/msto63/stampkit/cmd/stampkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

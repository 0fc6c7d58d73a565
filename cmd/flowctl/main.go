package main

import (
	"os"

	"github.com/ganot/freelanceflow/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/aldergate-labs/physika-cli/internal/adapters/driving/cli"
)

func main() {
	// A local .env is optional; the environment wins either way.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

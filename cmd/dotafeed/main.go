package main

import (
	"github.com/joho/godotenv"
	"github.com/pfrederiksen/dotafeed/internal/cli"
)

func main() {
	// Optional .env for OPENDOTA_API_KEY; absence is fine.
	_ = godotenv.Load()

	cli.Execute()
}

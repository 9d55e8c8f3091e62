package main

import (
	"github.com/joho/godotenv"

	"taxa/cmd"
)

func main() {
	// API keys may live in a local .env; missing file is fine.
	_ = godotenv.Load()

	cmd.Execute()
}

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/evergrid/quoteflow/internal/cli"
	"github.com/evergrid/quoteflow/pkg/version"
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	cmd := cli.NewRootCmd(version.GetVersion())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

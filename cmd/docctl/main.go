package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"docadmin/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "docctl:", err)
		os.Exit(1)
	}
}

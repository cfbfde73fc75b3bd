package main

import (
	"os"

	"github.com/goodhamgupta/ex-vespa/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

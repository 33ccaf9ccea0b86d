package main

import (
	"github.com/lus/fluent-syntax.go/cmd/ftl/cmd"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

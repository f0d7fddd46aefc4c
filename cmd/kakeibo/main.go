// Package main is the entry point for the kakeibo CLI.
package main

import (
	"os"

	"github.com/shunichi-ikebuchi/kakeibo-client/cmd/kakeibo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

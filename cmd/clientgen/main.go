// Package main provides the clientgen command line tool.
package main

import (
	"os"

	"github.com/clientgen/go-sdk/internal/cli"
)

var version = "dev"

func main() {
	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

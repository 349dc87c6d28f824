// Package main is the entry point for bean-render CLI.
package main

import (
	"os"

	"github.com/pigeonworks-llc/beancount-render/cmd/bean-render/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

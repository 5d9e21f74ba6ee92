package main

import (
	"os"

	"github.com/harlequix/bitguard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

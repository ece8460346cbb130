package main

import (
	"os"

	"github.com/devaun0506/blackstar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

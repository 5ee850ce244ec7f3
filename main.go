package main

import (
	"os"

	"github.com/abhisek/spellit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

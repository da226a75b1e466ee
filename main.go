package main

import (
	"os"

	"github.com/kaiyomaru/fieldassign/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/jobhunter-ai/jobhunter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

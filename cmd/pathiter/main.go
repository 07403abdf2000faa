package main

import (
	"os"

	"github.com/Ning0612/Pathiter/internal/commands"
)

func main() {
	if err := commands.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"invtrack/internal/logger"
)

func main() {
	err := newRootCmd().Execute()
	logger.Sync()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

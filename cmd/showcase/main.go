package main

import (
	"casino_showcase/internal/app"
	"fmt"
	"os"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		fmt.Fprintf(os.Stderr, "showcase failed: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"

	"github.com/fedl/labsite/internal/ctl"
)

func main() {
	if err := ctl.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/maxkimambo/fate/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		// Execute already printed the error
		os.Exit(1)
	}
}

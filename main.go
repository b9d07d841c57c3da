package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/depscope/depscope/cmd/depscope"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt)
	defer done()

	if err := depscope.New().ExecuteContext(ctx); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}

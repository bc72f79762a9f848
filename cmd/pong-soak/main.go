// Command pong-soak runs many headless pong sessions concurrently with random
// paddle input and prints a markdown report of frame times and scores.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/plus3/pong/internal/config"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Running %d sessions for %s...\n", cfg.Sessions, cfg.Duration)
	report, err := Run(ctx, cfg)
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

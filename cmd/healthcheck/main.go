// Command healthcheck probes the liveness endpoint of a running instance and
// exits non-zero when it is not healthy. Intended for container HEALTHCHECK use.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"greeter/internal/config"
	"greeter/internal/logger"
	"greeter/internal/probe"
)

func main() {
	cfg := config.Load()

	url := flag.String("url", "http://"+cfg.AppHost+"/healthz", "URL to probe")
	timeout := flag.Duration("timeout", 3*time.Second, "probe timeout")
	flag.Parse()

	log := logger.New(os.Stderr, cfg.LogLevel, cfg.Location)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := probe.Check(ctx, probe.NewClient(*timeout), *url); err != nil {
		log.WithError(err).Error("healthcheck_failed")
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/rodnney/biotech-x/internal/cli"
	"github.com/rodnney/biotech-x/internal/config"
)

// main starts the Biotech-X API: the /health endpoint, service info on /,
// analysis intake under /api/v1/analysis and Prometheus metrics.
func main() {
	os.Exit(cli.Main(config.ServiceAPI, os.Args[1:]))
}

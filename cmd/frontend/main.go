package main

import (
	"os"

	"github.com/rodnney/biotech-x/internal/cli"
	"github.com/rodnney/biotech-x/internal/config"
)

// main starts the Biotech-X frontend: the landing page with the live API
// status panel and the /api/health mirror.
func main() {
	os.Exit(cli.Main(config.ServiceFrontend, os.Args[1:]))
}

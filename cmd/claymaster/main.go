package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"claymaster/internal/app"
	"claymaster/internal/auth"
	"claymaster/internal/logger"
)

var (
	version = "dev"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "claymaster.db", "SQLite database path")
	adminPw := flag.String("adminpw", "", "Admin password (auto-generated if not set)")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `ClayMaster - Live Clay Sculpting Competition Server

Usage:
  claymaster [options]

Options:
  -port int      HTTP server port (default 8080)
  -db string     SQLite database path (default "claymaster.db")
  -adminpw str   Admin password (auto-generated if not set)
  -loglevel str  Log level: debug, info, warn, error (default "info")
  -version       Show version and exit
  -help          Show this help message

Examples:
  claymaster                          # Run on port 8080 with claymaster.db
  claymaster -port 9000               # Run on port 9000
  claymaster -db /data/contest.db     # Use custom database path
  claymaster -adminpw secret123       # Use specific admin password

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("claymaster %s\n", version)
		os.Exit(0)
	}

	password := *adminPw
	if password == "" {
		password = auth.GeneratePassword()
	}
	sessions := auth.New()

	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))

	a, err := app.New(appLog, *dbPath, password, sessions)
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	appLog.Info("Admin password", "password", password)

	addr := fmt.Sprintf(":%d", *port)
	if err := a.Run(addr); err != nil {
		log.Fatal(err)
	}
}

// Command allblack-mcp serves the All Black MCP tools over stdio, reading and
// writing data through a running allblack server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/claude/allblack/internal/logging"
	"github.com/claude/allblack/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "All Black server URL (e.g. http://localhost:8080)")
	logFile := flag.String("log-file", "", "optional rotated log file; stderr always receives logs")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("allblack-mcp", Version)
		return
	}

	if *serverURL == "" {
		*serverURL = os.Getenv("ALLBLACK_SERVER_URL")
	}
	if *serverURL == "" {
		fmt.Fprintf(os.Stderr, "Usage: allblack-mcp -server <URL> [-log-file path]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log, logCloser := logging.Setup(logging.Params{
		Level:   "info",
		File:    *logFile,
		Console: os.Stderr,
	})
	defer logCloser.Close()

	s := mcp.New(mcp.NewHTTPClient(*serverURL), Version, log, nil)
	log.Info("allblack-mcp serving stdio", "server", *serverURL)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("stdio server stopped", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/megamarkets/internal/app"
	"github.com/kk-code-lab/megamarkets/internal/config"
	"github.com/kk-code-lab/megamarkets/internal/logging"
)

func printHelp() {
	fmt.Print(`megamarkets - Terminal market and card tracker

USAGE:
    megamarkets [OPTIONS]

OPTIONS:
    -h, --help            Show this help message and exit
    -c, --config PATH     Read configuration from PATH

ENVIRONMENT:
    MEGAMARKETS_LOG_LEVEL   Override logging.level (debug, info, warn, error)
    MEGAMARKETS_LOG_FILE    Override logging.file
`)
}

// parseArgs returns the config path given on the command line and whether
// help was requested.
func parseArgs(args []string) (string, bool, error) {
	configPath := ""
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			return "", true, nil
		case arg == "-c" || arg == "--config":
			if i+1 >= len(args) {
				return "", false, fmt.Errorf("%s requires a path", arg)
			}
			i++
			configPath = args[i]
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		default:
			return "", false, fmt.Errorf("unknown argument %q", arg)
		}
	}
	return configPath, false, nil
}

func main() {
	// Set UTF-8 as fallback encoding so market names render on minimal terminals
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	configPath, help, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printHelp()
		os.Exit(2)
	}
	if help {
		printHelp()
		os.Exit(0)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logCloser.Close()
	}()

	app, err := apppkg.NewApplication(cfg, logger)
	if err != nil {
		logger.Error("cannot initialise terminal", "error", err)
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}

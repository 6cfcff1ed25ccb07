package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"yttranscript/internal/app"
)

// main is the command line entry point
func main() {
	var (
		helpFlag    = flag.Bool("help", false, "Show help message")
		versionFlag = flag.Bool("version", false, "Show version information")
		configFlag  = flag.String("config", "", "Path to configuration file")
	)
	flag.Parse()

	if *helpFlag {
		printHelp()
		os.Exit(0)
	}

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: no video URL or ID provided")
		printHelp()
		os.Exit(1)
	}

	if err := runApplication(flag.Arg(0), *configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runApplication contains the core application logic that can be tested
func runApplication(input, configPath string) error {
	if configPath != "" {
		os.Setenv("CONFIG_PATH", configPath)
	}

	application, err := app.NewApplication()
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer application.Shutdown()

	// Set up context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		cancel()
	}()

	return application.Run(ctx, input)
}

// printHelp displays command line usage information
func printHelp() {
	fmt.Println("yttranscript - YouTube Transcript Extraction")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("    yttranscript [OPTIONS] <video-url-or-id>")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("    -help        Show this help message")
	fmt.Println("    -version     Show version information")
	fmt.Println("    -config      Path to configuration file")
	fmt.Println()
	fmt.Println("CONFIGURATION:")
	fmt.Println("    Without -config, settings are read from YTT_* environment")
	fmt.Println("    variables, falling back to built-in defaults.")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("    yttranscript https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	fmt.Println("    yttranscript dQw4w9WgXcQ")
	fmt.Println("    yttranscript -config config.yaml dQw4w9WgXcQ")
}

// printVersion displays version and build information
func printVersion() {
	fmt.Println("yttranscript")
	fmt.Println("Version: 1.0")
	fmt.Println("Extraction: watch page scrape + innertube get_transcript")
}

package main

import (
	"fmt"
	"os"

	"github.com/casement-gl/casement/cmd/casement/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = commands.Init(args)
	case "fetch-sdl":
		err = commands.FetchSDL(args)
	case "bundle-macos":
		err = commands.BundleMacOS(args)
	case "version", "-v", "--version":
		fmt.Printf("casement version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`casement - windowing bridge CLI

Usage: casement <command> [options]

Commands:
  init          Initialize a new casement project
  fetch-sdl     Download a prebuilt SDL2 library into the project cache
  bundle-macos  Build and bundle a macOS .app with SDL2 embedded
  version       Print version information
  help          Show this help message

Examples:
  casement init --name MyApp          Create casement.toml for MyApp
  casement fetch-sdl                  Fetch SDL2 for the current platform
  casement fetch-sdl --version 2.30.9 Fetch a specific SDL2 release
  casement bundle-macos --release     Produce build/MyApp.app

Configuration:
  Projects are configured via casement.toml in the project root.
  Run 'casement init' to create one with default configuration.`)
}

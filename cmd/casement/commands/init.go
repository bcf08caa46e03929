package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Init implements the 'casement init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	name := fs.String("name", "", "Project name")
	identifier := fs.String("id", "", "App identifier (e.g., com.example.myapp)")
	force := fs.Bool("force", false, "Overwrite existing files")
	fs.Parse(args)

	projectName := *name
	if projectName == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		projectName = filepath.Base(cwd)
	}

	appIdentifier := *identifier
	if appIdentifier == "" {
		appIdentifier = "com.example." + sanitizeName(projectName)
	}

	if _, err := os.Stat("casement.toml"); err == nil && !*force {
		return fmt.Errorf("casement.toml already exists (use --force to overwrite)")
	}

	fmt.Printf("Initializing casement project: %s\n", projectName)

	config := DefaultConfig()
	config.App.Name = projectName
	config.App.Identifier = appIdentifier

	if err := SaveConfig(config); err != nil {
		return err
	}
	fmt.Println("  ✓ Created casement.toml")

	fmt.Println("")
	fmt.Println("Next steps:")
	fmt.Println("  casement fetch-sdl      Download SDL2 for this platform")
	fmt.Println("  go run .                Run the application")

	return nil
}

// sanitizeName lowercases a project name and strips characters that are not
// valid in a reverse-DNS identifier segment
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "app"
	}
	return b.String()
}

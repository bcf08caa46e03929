package commands

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
)

// FetchSDL implements the 'casement fetch-sdl' command
func FetchSDL(args []string) error {
	fs := flag.NewFlagSet("fetch-sdl", flag.ExitOnError)
	version := fs.String("version", "", "SDL2 release version (default from casement.toml)")
	arch := fs.String("arch", runtime.GOARCH, "Target architecture (amd64, arm64)")
	output := fs.String("output", "", "Destination path (default: project cache)")
	force := fs.Bool("force", false, "Re-download even if cached")
	fs.Parse(args)

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("Warning: %v, using defaults\n", err)
		config = DefaultConfig()
	}

	sdlVersion := *version
	if sdlVersion == "" {
		sdlVersion = config.Build.SDLVersion
	}

	target := Target(runtime.GOOS, *arch)
	if target == "" {
		return fmt.Errorf("unsupported platform %s/%s", runtime.GOOS, *arch)
	}

	dest := *output
	if dest == "" {
		dest = LibraryCachePath(target)
	}

	if !*force {
		if _, err := os.Stat(dest); err == nil {
			fmt.Printf("Already cached: %s\n", dest)
			return nil
		}
	}

	url := LibraryURL(sdlVersion, target)
	fmt.Printf("Fetching SDL2 %s for %s...\n", sdlVersion, target)

	if err := downloadFile(url, dest); err != nil {
		return err
	}

	fmt.Printf("✓ %s\n", dest)
	fmt.Println("")
	fmt.Println("To use it directly:")
	fmt.Printf("  export CASEMENT_SDL2_PATH=%s\n", dest)
	return nil
}

func downloadFile(url, dest string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: %s returned %s", url, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp := dest + ".part"
	out, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("download interrupted: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dest)
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	cacheDir    = ".casement"
	cacheLibDir = "lib"

	defaultSDLVersion = "2.30.9"

	// Release asset layout of the prebuilt SDL2 mirror
	sdlReleaseURL = "https://github.com/casement-gl/sdl2-prebuilt/releases/download/v%s/%s"
)

// CurrentTarget returns the library target triple for the current platform
func CurrentTarget() string {
	return Target(runtime.GOOS, runtime.GOARCH)
}

// Target returns the library target triple for a goos/goarch pair
func Target(goos, goarch string) string {
	switch goos {
	case "darwin":
		if goarch == "arm64" {
			return "aarch64-apple-darwin"
		}
		return "x86_64-apple-darwin"
	case "linux":
		if goarch == "arm64" {
			return "aarch64-unknown-linux-gnu"
		}
		return "x86_64-unknown-linux-gnu"
	case "windows":
		if goarch == "arm64" {
			return "aarch64-pc-windows-msvc"
		}
		return "x86_64-pc-windows-msvc"
	default:
		return ""
	}
}

// LibraryName returns the SDL2 library filename for a given target
func LibraryName(target string) string {
	switch {
	case strings.Contains(target, "darwin"):
		return "libSDL2-2.0.0.dylib"
	case strings.Contains(target, "windows"):
		return "SDL2.dll"
	default:
		return "libSDL2-2.0.so.0"
	}
}

// LibraryAssetName returns the release asset name for a target, which
// carries the target triple so one release serves every platform
func LibraryAssetName(target string) string {
	return fmt.Sprintf("%s-%s", target, LibraryName(target))
}

// LibraryCachePath returns the cached library path for a target
func LibraryCachePath(target string) string {
	return filepath.Join(cacheDir, cacheLibDir, target, LibraryName(target))
}

// LibraryCached checks if the library is already in the cache for a target
func LibraryCached(target string) bool {
	_, err := os.Stat(LibraryCachePath(target))
	return err == nil
}

// LibraryURL returns the download URL for a target and SDL2 version
func LibraryURL(version, target string) string {
	return fmt.Sprintf(sdlReleaseURL, version, LibraryAssetName(target))
}

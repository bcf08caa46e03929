package sdl

import (
	"os"
	"runtime"
)

// EnvLibPath overrides library resolution entirely when set.
const EnvLibPath = "CASEMENT_SDL2_PATH"

// resolveLibraryPath picks the library path to load. Order: explicit
// override, environment override, platform resolution.
func resolveLibraryPath(override string) string {
	if override != "" {
		return override
	}
	if env := os.Getenv(EnvLibPath); env != "" {
		return env
	}
	candidates, bare := libraryCandidates()
	return resolveLibrary(candidates, bare)
}

// libraryCandidates returns the ordered probe list and the bare soname
// fallback for the current platform.
//
// On macOS dyld does not reliably resolve a bare library name, and package
// managers install to different prefixes, so we probe a fixed priority
// order: Apple-silicon Homebrew, Intel Homebrew, MacPorts. Linux and
// Windows loaders resolve the bare name themselves.
func libraryCandidates() ([]string, string) {
	switch runtime.GOOS {
	case "darwin":
		const name = "libSDL2-2.0.0.dylib"
		return []string{
			"/opt/homebrew/lib/" + name,
			"/usr/local/lib/" + name,
			"/opt/local/lib/" + name,
		}, name
	case "windows":
		return nil, "SDL2.dll"
	default:
		return nil, "libSDL2-2.0.so.0"
	}
}

// resolveLibrary returns the first candidate that exists on disk, or the
// fallback name when none do.
func resolveLibrary(candidates []string, fallback string) string {
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return fallback
}

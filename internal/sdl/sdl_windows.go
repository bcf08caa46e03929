//go:build windows

package sdl

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// openLibrary loads a dynamic library on Windows. The returned HMODULE is
// what purego.RegisterLibFunc expects as a handle.
func openLibrary(path string) (uintptr, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return 0, fmt.Errorf("LoadDLL: %w", err)
	}
	return uintptr(dll.Handle), nil
}

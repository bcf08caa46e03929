package casement

import "errors"

// Error kinds for the startup pipeline and the frame loop. Startup errors
// are fatal: callers log and exit non-zero. ErrPresent terminates the loop
// but still runs shutdown; nothing here is retried, since each failure
// reflects an unrecoverable environment mismatch rather than a transient
// condition.
var (
	// ErrLibraryLoad reports that the SDL2 library could not be resolved,
	// opened, or was missing a required entry point.
	ErrLibraryLoad = errors.New("casement: windowing library load failed")

	// ErrWindowCreate reports a null handle from native window creation.
	ErrWindowCreate = errors.New("casement: window creation failed")

	// ErrSurfaceQuery reports a failed window-manager info query.
	ErrSurfaceQuery = errors.New("casement: window manager info query failed")

	// ErrSubsystem reports a runtime subsystem discriminant with no valid
	// handling for the compiled-target OS. Never silently defaulted:
	// presenting through the wrong subsystem corrupts the native surface.
	ErrSubsystem = errors.New("casement: unsupported windowing subsystem")

	// ErrNoAdapter reports that no compatible GPU adapter was found.
	ErrNoAdapter = errors.New("casement: no compatible GPU adapter")

	// ErrNoDevice reports a failed GPU device request.
	ErrNoDevice = errors.New("casement: GPU device request failed")

	// ErrPresent reports a failed frame acquire or present.
	ErrPresent = errors.New("casement: presentation failed")
)

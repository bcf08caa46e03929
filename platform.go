package casement

// Subsystem identifies the OS windowing backend a surface is bound to.
type Subsystem string

const (
	SubsystemCocoa   Subsystem = "cocoa"
	SubsystemWin32   Subsystem = "win32"
	SubsystemX11     Subsystem = "x11"
	SubsystemWayland Subsystem = "wayland"
)

// validSubsystems lists the discriminants each compiled target accepts.
// Anything outside this set is a hard stop at surface creation.
var validSubsystems = map[string][]Subsystem{
	"darwin":  {SubsystemCocoa},
	"windows": {SubsystemWin32},
	"linux":   {SubsystemX11, SubsystemWayland},
}

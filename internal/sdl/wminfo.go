package sdl

import "encoding/binary"

// The window-manager info record (SDL_SysWMinfo) is an untyped union on the
// wire: a version header, a subsystem discriminant, then OS-specific
// pointer-sized fields whose offsets depend on the discriminant. SDL offers
// no typed accessor for it, so the layout is specified here once and
// decoded with plain offset reads.
//
// Reference layout (64-bit desktop builds):
//
//	offset 0..2   version major/minor/patch (must be seeded before the query)
//	offset 3      padding
//	offset 4..7   subsystem discriminant, little-endian u32
//	offset 8..    union, per subsystem:
//	    cocoa    +0  NSView*                      (view handle)
//	    win32    +0  HWND, +16 HINSTANCE          (HDC occupies the 8-byte gap)
//	    x11      +0  Display*, +8 Window
//	    wayland  +0  wl_display*, +8 wl_surface*
const (
	wmInfoSize     = 72
	wmSubsystemOff = 4
	wmUnionOff     = 8
)

// PtrSize is the pointer width the union layout assumes. Desktop SDL2
// builds on all supported targets are 64-bit.
const PtrSize = 8

// Windowing subsystem discriminants (SDL_SYSWM_TYPE).
const (
	SubsystemUnknown uint32 = 0
	SubsystemWindows uint32 = 1
	SubsystemX11     uint32 = 2
	SubsystemCocoa   uint32 = 4
	SubsystemWayland uint32 = 6
)

// SubsystemName returns a diagnostic name for a subsystem discriminant.
func SubsystemName(s uint32) string {
	switch s {
	case SubsystemWindows:
		return "win32"
	case SubsystemX11:
		return "x11"
	case SubsystemCocoa:
		return "cocoa"
	case SubsystemWayland:
		return "wayland"
	default:
		return "unknown"
	}
}

// unionOffsets locates the pointer-sized fields of one subsystem's union
// variant, relative to the start of the record. second is -1 when the
// variant carries a single handle. Keeping this in one table is the only
// place layout knowledge lives; decoding is a pure read over it.
type unionOffsets struct {
	first  int
	second int
}

var unionLayout = map[uint32]unionOffsets{
	SubsystemCocoa:   {first: wmUnionOff, second: -1},
	SubsystemWindows: {first: wmUnionOff, second: wmUnionOff + PtrSize + 8},
	SubsystemX11:     {first: wmUnionOff, second: wmUnionOff + PtrSize},
	SubsystemWayland: {first: wmUnionOff, second: wmUnionOff + PtrSize},
}

// WMInfo is one window-manager info record.
type WMInfo struct {
	buf [wmInfoSize]byte
}

// NewWMInfo returns a record seeded with the library's version header, the
// prerequisite for a well-formed query.
func NewWMInfo(v Version) *WMInfo {
	var i WMInfo
	i.buf[0] = v.Major
	i.buf[1] = v.Minor
	i.buf[2] = v.Patch
	return &i
}

// Version returns the seeded version header.
func (i *WMInfo) Version() Version {
	return Version{Major: i.buf[0], Minor: i.buf[1], Patch: i.buf[2]}
}

// Subsystem returns the windowing-subsystem discriminant.
func (i *WMInfo) Subsystem() uint32 {
	return binary.LittleEndian.Uint32(i.buf[wmSubsystemOff : wmSubsystemOff+4])
}

// Handles decodes the union for the record's subsystem. first is the
// view/window/display handle, second the instance/window/surface handle (0
// for single-handle variants). ok is false for a discriminant with no known
// layout.
func (i *WMInfo) Handles() (first, second uint64, ok bool) {
	off, known := unionLayout[i.Subsystem()]
	if !known {
		return 0, 0, false
	}
	first = i.u64At(off.first)
	if off.second >= 0 {
		second = i.u64At(off.second)
	}
	return first, second, true
}

func (i *WMInfo) u64At(off int) uint64 {
	return binary.LittleEndian.Uint64(i.buf[off : off+PtrSize])
}

// SetSubsystem and SetHandle exist so tests can build synthetic records;
// production records are written by the native query call.

func (i *WMInfo) SetSubsystem(s uint32) {
	binary.LittleEndian.PutUint32(i.buf[wmSubsystemOff:wmSubsystemOff+4], s)
}

func (i *WMInfo) SetHandle(off int, v uint64) {
	binary.LittleEndian.PutUint64(i.buf[off:off+PtrSize], v)
}

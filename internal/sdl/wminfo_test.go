package sdl

import "testing"

func TestWMInfoSeedsVersionHeader(t *testing.T) {
	info := NewWMInfo(Version{Major: 2, Minor: 30, Patch: 11})
	if got := info.Version(); got != (Version{2, 30, 11}) {
		t.Errorf("Version = %v, want 2.30.11", got)
	}
}

func TestWMInfoHandleOffsets(t *testing.T) {
	tests := []struct {
		name      string
		subsystem uint32
		write     map[int]uint64 // offset -> value
		first     uint64
		second    uint64
	}{
		{
			name:      "cocoa view at 8",
			subsystem: SubsystemCocoa,
			write:     map[int]uint64{8: 0xAABB0001},
			first:     0xAABB0001,
		},
		{
			name:      "win32 window at 8, instance at 24 across the hdc gap",
			subsystem: SubsystemWindows,
			write:     map[int]uint64{8: 0x1111, 16: 0xDEAD, 24: 0x2222},
			first:     0x1111,
			second:    0x2222,
		},
		{
			name:      "x11 display at 8, window at 16",
			subsystem: SubsystemX11,
			write:     map[int]uint64{8: 0x3333, 16: 0x4444},
			first:     0x3333,
			second:    0x4444,
		},
		{
			name:      "wayland display at 8, surface at 16",
			subsystem: SubsystemWayland,
			write:     map[int]uint64{8: 0x5555, 16: 0x6666},
			first:     0x5555,
			second:    0x6666,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewWMInfo(Version{2, 30, 11})
			info.SetSubsystem(tt.subsystem)
			for off, v := range tt.write {
				info.SetHandle(off, v)
			}

			first, second, ok := info.Handles()
			if !ok {
				t.Fatalf("Handles: no layout for subsystem %d", tt.subsystem)
			}
			if first != tt.first {
				t.Errorf("first = %#x, want %#x", first, tt.first)
			}
			if second != tt.second {
				t.Errorf("second = %#x, want %#x", second, tt.second)
			}
		})
	}
}

func TestWMInfoUnknownSubsystemHasNoLayout(t *testing.T) {
	for _, sys := range []uint32{SubsystemUnknown, 3 /* directfb */, 99} {
		info := NewWMInfo(Version{2, 30, 11})
		info.SetSubsystem(sys)
		if _, _, ok := info.Handles(); ok {
			t.Errorf("subsystem %d: unexpected layout", sys)
		}
	}
}

func TestSubsystemName(t *testing.T) {
	names := map[uint32]string{
		SubsystemCocoa:   "cocoa",
		SubsystemWindows: "win32",
		SubsystemX11:     "x11",
		SubsystemWayland: "wayland",
		SubsystemUnknown: "unknown",
		42:               "unknown",
	}
	for sys, want := range names {
		if got := SubsystemName(sys); got != want {
			t.Errorf("SubsystemName(%d) = %q, want %q", sys, got, want)
		}
	}
}

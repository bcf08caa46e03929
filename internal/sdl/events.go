package sdl

import "encoding/binary"

// EventRecordSize is the size of the native SDL_Event union. SDL always
// writes the full record, so the poll buffer must be at least this large.
const EventRecordSize = 56

// Event type discriminants (SDL_EventType). Only quit matters to the
// bridge; everything else is drained and dropped.
const (
	EventQuit uint32 = 0x100
)

// Event is a reusable buffer for one native event record. The first four
// bytes are the little-endian type discriminant; the rest of the union is
// unused here.
type Event struct {
	buf [EventRecordSize]byte
}

// Type returns the event's type discriminant.
func (e *Event) Type() uint32 {
	return binary.LittleEndian.Uint32(e.buf[0:4])
}

// SetType writes the type discriminant. Exists for synthetic events in
// tests; production records are written by the native poll call.
func (e *Event) SetType(t uint32) {
	binary.LittleEndian.PutUint32(e.buf[0:4], t)
}

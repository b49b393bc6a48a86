package stream

import "io"

// EventReader provides events from a source.
type EventReader interface {
	ReadEvent() (*Event, error)
}

// EventSink receives events.
type EventSink interface {
	WriteEvent(*Event) error
}

// SliceEventReader reads events from a slice.
type SliceEventReader struct {
	events []Event
}

// NewSliceEventReader creates an event reader over events.
func NewSliceEventReader(events []Event) *SliceEventReader {
	return &SliceEventReader{events: events}
}

// ReadEvent returns the next event, or io.EOF when there are none left.
func (r *SliceEventReader) ReadEvent() (*Event, error) {
	if len(r.events) == 0 {
		return nil, io.EOF
	}
	ev := &r.events[0]
	r.events = r.events[1:]
	return ev, nil
}

// Copy writes every event from src to dst until src returns io.EOF, and
// returns the number of events copied.
func Copy(dst EventSink, src EventReader) (int, error) {
	n := 0
	for {
		ev, err := src.ReadEvent()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := dst.WriteEvent(ev); err != nil {
			return n, err
		}
		n++
	}
}

package stream

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jvkit/jv/value"
)

// State tracks container nesting for a sequence of events and rejects
// sequences which do not form a document. It is shared by Decoder and
// Encoder and may be used directly with any event source.
type State struct {
	stack    []frame
	done     bool
	maxDepth int
}

type frame struct {
	object bool
	n      int
	key    string
	hasKey bool
}

// NewState creates a State allowing up to maxDepth nested containers;
// maxDepth <= 0 means no bound.
func NewState(maxDepth int) *State {
	return &State{maxDepth: maxDepth}
}

func structErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStructure, fmt.Sprintf(format, args...))
}

func (s *State) current() *frame {
	return &s.stack[len(s.stack)-1]
}

// ProcessEvent updates the state with ev.
func (s *State) ProcessEvent(ev *Event) error {
	if s.done {
		return structErr("%s after end of document", ev.Type)
	}
	switch ev.Type {
	case EventKey:
		if len(s.stack) == 0 || !s.current().object {
			return structErr("key %q outside of an object", ev.Key)
		}
		cur := s.current()
		if cur.hasKey {
			return structErr("key %q after key %q", ev.Key, cur.key)
		}
		cur.key = ev.Key
		cur.hasKey = true
		return nil
	case EventEndObject, EventEndArray:
		object := ev.Type == EventEndObject
		if len(s.stack) == 0 || s.current().object != object {
			return structErr("unmatched %s", ev.Type)
		}
		if s.current().hasKey {
			return structErr("key %q has no value", s.current().key)
		}
		s.stack = s.stack[:len(s.stack)-1]
		s.done = len(s.stack) == 0
		return nil
	}
	if len(s.stack) > 0 {
		cur := s.current()
		if cur.object && !cur.hasKey {
			return structErr("%s where a key is expected", ev.Type)
		}
		cur.n++
		cur.hasKey = false
	}
	switch ev.Type {
	case EventBeginObject, EventBeginArray:
		if s.maxDepth > 0 && len(s.stack) >= s.maxDepth {
			return fmt.Errorf("%w: more than %d levels", ErrDepth, s.maxDepth)
		}
		s.stack = append(s.stack, frame{object: ev.Type == EventBeginObject})
	default:
		s.done = len(s.stack) == 0
	}
	return nil
}

// Reset clears the state for a new document.
func (s *State) Reset() {
	s.stack = s.stack[:0]
	s.done = false
}

// Done reports whether a complete top level value has been seen.
func (s *State) Done() bool { return s.done }

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int { return len(s.stack) }

// Len returns the number of values seen in the current container.
func (s *State) Len() int {
	if len(s.stack) == 0 {
		return 0
	}
	return s.current().n
}

// IsInObject returns true if currently inside an object.
func (s *State) IsInObject() bool {
	return len(s.stack) > 0 && s.current().object
}

// IsInArray returns true if currently inside an array.
func (s *State) IsInArray() bool {
	return len(s.stack) > 0 && !s.current().object
}

// CurrentKey returns the last key seen in the current object.
func (s *State) CurrentKey() (string, bool) {
	if !s.IsInObject() {
		return "", false
	}
	cur := s.current()
	return cur.key, cur.hasKey || cur.n > 0
}

// CurrentIndex returns the index of the last value seen in the current
// array.
func (s *State) CurrentIndex() (int, bool) {
	if !s.IsInArray() || s.current().n == 0 {
		return 0, false
	}
	return s.current().n - 1, true
}

// CurrentPath returns the path of the current position, in the syntax
// of value.ParsePath.
func (s *State) CurrentPath() string {
	var b strings.Builder
	b.WriteByte('$')
	for i := range s.stack {
		f := &s.stack[i]
		switch {
		case f.object && (f.hasKey || f.n > 0):
			b.WriteByte('.')
			b.WriteString(value.PathField(f.key))
		case !f.object && f.n > 0:
			b.WriteString("[" + strconv.Itoa(f.n-1) + "]")
		}
	}
	return b.String()
}

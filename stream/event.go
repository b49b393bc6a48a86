package stream

import (
	"fmt"

	"github.com/jvkit/jv/token"
)

// Event is a structural event. Only the field matching Type is set.
type Event struct {
	Type EventType

	Key    string
	String string
	// Number holds the literal text of a number.
	Number string
	Bool   bool

	// Pos is the input position of a decoded event.
	Pos token.Pos
}

// IsValueStart reports whether e starts a value.
func (e *Event) IsValueStart() bool {
	switch e.Type {
	case EventBeginObject, EventBeginArray, EventString, EventNumber, EventBool, EventNull:
		return true
	default:
		return false
	}
}

func (e *Event) text() string {
	switch e.Type {
	case EventKey:
		return fmt.Sprintf("%s %q", e.Type, e.Key)
	case EventString:
		return fmt.Sprintf("%s %q", e.Type, e.String)
	case EventNumber:
		return fmt.Sprintf("%s %s", e.Type, e.Number)
	case EventBool:
		return fmt.Sprintf("%s %t", e.Type, e.Bool)
	default:
		return e.Type.String()
	}
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventBeginObject EventType = iota
	EventEndObject
	EventBeginArray
	EventEndArray
	EventKey
	EventString
	EventNumber
	EventBool
	EventNull
)

var eventNames = map[EventType]string{
	EventBeginObject: "BeginObject",
	EventEndObject:   "EndObject",
	EventBeginArray:  "BeginArray",
	EventEndArray:    "EndArray",
	EventKey:         "Key",
	EventString:      "String",
	EventNumber:      "Number",
	EventBool:        "Bool",
	EventNull:        "Null",
}

func (t EventType) String() string {
	if s, ok := eventNames[t]; ok {
		return s
	}
	return "Unknown"
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	for et, name := range eventNames {
		if name == k {
			*t = et
			return nil
		}
	}
	return fmt.Errorf("unknown event type %q", k)
}

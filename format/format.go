// Package format names the document encodings jv reads and writes.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	BSONFormat

	numFormats
)

var ErrBadFormat = errors.New("bad format")

type info struct {
	name     string
	short    string
	suffixes []string
	media    string
	binary   bool
}

var infos = [numFormats]info{
	JSONFormat: {name: "json", short: "j", suffixes: []string{".json"}, media: "application/json"},
	YAMLFormat: {name: "yaml", short: "y", suffixes: []string{".yaml", ".yml"}, media: "application/yaml"},
	BSONFormat: {name: "bson", short: "b", suffixes: []string{".bson"}, media: "application/bson", binary: true},
}

func (f Format) info() (*info, bool) {
	if f < 0 || f >= numFormats {
		return nil, false
	}
	return &infos[f], true
}

// ParseFormat accepts a format name or its one letter abbreviation,
// ignoring case.
func ParseFormat(v string) (Format, error) {
	lv := strings.ToLower(v)
	for i := range infos {
		if infos[i].name == lv || infos[i].short == lv {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath returns the format implied by the extension of path.
func FromPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return 0, false
	}
	for i := range infos {
		for _, s := range infos[i].suffixes {
			if s == ext {
				return Format(i), true
			}
		}
	}
	return 0, false
}

func (f Format) String() string {
	if in, ok := f.info(); ok {
		return in.name
	}
	return fmt.Sprintf("<format %d>", int(f))
}

func (f Format) MarshalText() ([]byte, error) {
	in, ok := f.info()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(in.name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }

// IsBinary reports whether documents in f are not text.
func (f Format) IsBinary() bool {
	in, ok := f.info()
	return ok && in.binary
}

// Suffix is the preferred file extension, dot included.
func (f Format) Suffix() string {
	if in, ok := f.info(); ok {
		return in.suffixes[0]
	}
	return ""
}

// MediaType returns the MIME type of f.
func (f Format) MediaType() string {
	if in, ok := f.info(); ok {
		return in.media
	}
	return ""
}

func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat, BSONFormat}
}

package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Format is the encoding of a stored image, derived from its key's extension.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	default:
		return "png"
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	return "image/" + f.String()
}

var keyPattern = regexp.MustCompile(`(?i)^.+\.(png|jpg)$`)

// Key identifies a stored image. It is always a single path segment ending in
// .png or .jpg (any case).
type Key struct {
	Name   string
	Format Format
}

func (k Key) String() string {
	return k.Name
}

// ParseKey validates a raw filename before it is allowed anywhere near storage.
// Keys with an unsupported extension return ErrUnsupportedFormat; keys that are
// not a single safe path segment return ErrInvalidKey.
func ParseKey(name string) (Key, error) {
	matches := keyPattern.FindStringSubmatch(name)
	if matches == nil {
		return Key{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}

	// Leading dots are reserved for in-flight temp files.
	if strings.ContainsAny(name, `/\`+"\x00") || strings.HasPrefix(name, ".") {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}

	format := FormatPNG
	if strings.EqualFold(matches[1], "jpg") {
		format = FormatJPEG
	}

	return Key{Name: name, Format: format}, nil
}

package domain

import "errors"

var (
	// ErrUnsupportedFormat is returned for keys that do not end in .png or .jpg.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrInvalidKey is returned for keys that are not a single safe path segment.
	ErrInvalidKey = errors.New("invalid image key")
	// ErrNotFound is returned when no object is stored under a key.
	ErrNotFound = errors.New("image has not been uploaded yet")
	// ErrUnreadable is returned when an object exists but cannot be decoded or read.
	ErrUnreadable = errors.New("image is unreadable")
	// ErrPayloadTooLarge is returned when an upload exceeds the body ceiling.
	ErrPayloadTooLarge = errors.New("image exceeds the upload size limit")
	// ErrUnsupportedMediaType is returned for upload bodies that are not image/*.
	ErrUnsupportedMediaType = errors.New("upload body must be an image")
)

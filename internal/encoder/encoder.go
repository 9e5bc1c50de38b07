package encoder

import (
	"fmt"
	"image"
	"strings"
)

// Encoder encodes a frame into bytes.
type Encoder interface {
	Encode(img *image.RGBA) ([]byte, error)
	// Ext is the file extension, without the dot.
	Ext() string
}

// ForFormat returns the encoder for "png" or "jpeg"/"jpg".
func ForFormat(format string, quality int) (Encoder, error) {
	switch strings.ToLower(format) {
	case "png":
		return NewPNGEncoder(), nil
	case "jpeg", "jpg":
		return NewJPEGEncoder(quality), nil
	}
	return nil, fmt.Errorf("unknown frame format %q", format)
}

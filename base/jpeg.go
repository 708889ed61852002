// Copyright © 2023 <Sloan Childers>
package base

import (
	"bytes"
	"image"
	"image/jpeg"
)

const (
	JPEG_MARKER byte = 0xFF
	JPEG_SOI    byte = 0xD8
	JPEG_EOI    byte = 0xD9
)

func ValidateJPEG(data []byte) bool {
	size := len(data)
	if size < 4 {
		return false
	}
	if (data[0] == JPEG_MARKER) && (data[1] == JPEG_SOI) && (data[size-2] == JPEG_MARKER) && (data[size-1] == JPEG_EOI) {
		return true
	}
	return false
}

// EmptyFrame renders a black JPEG, which clears a tag when uploaded.
func EmptyFrame(width, height int) []byte {
	// zeroed pixels encode as black
	pix := make([]uint8, width*height*4)
	img := &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	var b bytes.Buffer
	jpeg.Encode(&b, img, &jpeg.Options{Quality: 10})
	return b.Bytes()
}

func BlankTag() []byte {
	return EmptyFrame(TAG_WIDTH, TAG_HEIGHT)
}

func Copy(slice []byte) []byte {
	out := make([]byte, len(slice))
	copy(out, slice)
	return out
}

// Copyright © 2023 Sloan Childers
package base

import (
	"bufio"
	"bytes"
	"errors"
	"time"

	dsoprea "github.com/dsoprea/go-exif"
	exif "github.com/dsoprea/go-exif/v3"
	jis "github.com/dsoprea/go-jpeg-image-structure/v2"
	"github.com/rs/zerolog/log"
)

var ErrNotJPEG = errors.New("not a jpeg")

// StampExif writes who pushed the image, from where and when into the
// JPEG's EXIF block. The input slice is never modified.
func StampExif(artist, host string, stampTime time.Time, jpeg []byte) ([]byte, error) {
	if !ValidateJPEG(jpeg) {
		return jpeg, ErrNotJPEG
	}
	intfc, err := jis.NewJpegMediaParser().ParseBytes(jpeg)
	if err != nil {
		log.Error().Err(err).Str("component", "exif").Msg("ParseBytes")
		return jpeg, err
	}
	sl := intfc.(*jis.SegmentList)
	ib, err := sl.ConstructExifBuilder()
	if err != nil {
		log.Error().Err(err).Str("component", "exif").Msg("ConstructExifBuilder")
		return jpeg, err
	}

	ifd0Ib, err := exif.GetOrCreateIbFromRootIb(ib, "IFD")
	if err != nil {
		return jpeg, err
	}
	exifIb, err := exif.GetOrCreateIbFromRootIb(ib, dsoprea.IfdPathStandardExif)
	if err != nil {
		return jpeg, err
	}

	ifd0Ib.SetStandardWithName("Artist", artist)
	ifd0Ib.SetStandardWithName("HostComputer", host)
	exifIb.SetStandardWithName("DateTimeOriginal", stampTime)

	err = sl.SetExif(ib)
	if err != nil {
		log.Error().Err(err).Str("component", "exif").Msg("SetExif")
		return jpeg, err
	}

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	err = sl.Write(w)
	if err != nil {
		log.Error().Err(err).Str("component", "exif").Msg("Write")
		return jpeg, err
	}
	w.Flush()

	return Copy(buf.Bytes()), nil
}

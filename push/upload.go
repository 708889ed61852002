// Copyright © 2023 Sloan Childers
package push

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/osintami/elstatus/base"
	"github.com/rs/zerolog/log"
)

const (
	UPLOAD_PATH = "imgupload"
	ARTIST      = "elstatus"
)

var ErrReadImage = errors.New("read image")
var ErrTransport = errors.New("transport")
var ErrStatus = errors.New("unexpected status")

type Uploader struct {
	client *resty.Client
}

// NewUploader wraps client, or a fresh resty client when nil.
func NewUploader(client *resty.Client) *Uploader {
	if client == nil {
		client = resty.New()
	}
	return &Uploader{client: client}
}

func UploadURL(host string) string {
	return fmt.Sprintf("http://%s/%s", host, UPLOAD_PATH)
}

// Upload posts one image to the access point. The image is fully loaded
// before the request is built, so local failures never reach the network.
func (x *Uploader) Upload(ctx context.Context, config *base.UploadConfig) (*base.Outcome, error) {
	image, err := x.loadImage(config)
	if err != nil {
		return nil, err
	}

	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	url := UploadURL(config.Host)
	req := x.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"dither": strconv.Itoa(config.Dither),
			"mac":    config.Mac,
		}).
		SetFileReader("file", filepath.Base(config.ImagePath), image)

	log.Debug().Str("component", "push").Str("url", url).Str("mac", config.Mac).Int("dither", config.Dither).Msg("uploading")

	resp, err := req.Post(url)
	if err != nil {
		log.Error().Err(err).Str("component", "push").Str("url", url).Msg("post")
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	outcome := &base.Outcome{StatusCode: resp.StatusCode(), Body: resp.Body()}
	if !outcome.OK() {
		log.Warn().Str("component", "push").Str("url", url).Int("status", outcome.StatusCode).Msg("rejected")
		return outcome, fmt.Errorf("%w: %d", ErrStatus, outcome.StatusCode)
	}
	log.Info().Str("component", "push").Str("url", url).Str("mac", config.Mac).Msg("uploaded")
	return outcome, nil
}

func (x *Uploader) loadImage(config *base.UploadConfig) (io.Reader, error) {
	var data []byte
	if config.Blank {
		data = base.BlankTag()
	} else {
		var err error
		data, err = readImage(config.ImagePath)
		if err != nil {
			log.Error().Err(err).Str("component", "push").Str("file", config.ImagePath).Msg("read image")
			return nil, fmt.Errorf("%w: %v", ErrReadImage, err)
		}
	}

	if config.Stamp {
		host, _ := os.Hostname()
		stamped, err := base.StampExif(ARTIST, host, time.Now(), data)
		if err != nil {
			log.Error().Err(err).Str("component", "push").Str("file", config.ImagePath).Msg("stamp exif")
			return nil, fmt.Errorf("%w: stamp %s: %v", ErrReadImage, config.ImagePath, err)
		}
		data = stamped
	}
	return bytes.NewReader(data), nil
}

func readImage(fileName string) ([]byte, error) {
	fh, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	info, err := fh.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", fileName)
	}
	return io.ReadAll(fh)
}

// Copyright © 2023 Sloan Childers
package accesspoint

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/osintami/elstatus/base"
	"github.com/osintami/elstatus/sink"
	"github.com/rs/zerolog/log"
)

type Config struct {
	PathPrefix string `env:"PATH_PREFIX" envDefault:"/"`
	ListenAddr string `env:"LISTEN_ADDR,required" envDefault:"0.0.0.0:8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"INFO"`
	SaveDir    string `env:"SAVE_DIR"`
	// reply status for accepted uploads, anything but 200 exercises client failures
	Status int `env:"STATUS" envDefault:"200"`
}

const MAX_FORM_MEMORY = 8 << 20

var ErrMissingField = errors.New("missing form field")
var ErrNoImage = errors.New("no image for tag")

type AccessPoint struct {
	config   *Config
	uploads  []*base.Upload
	requests int
	mutex    sync.Mutex
}

func NewAccessPoint(config *Config) *AccessPoint {
	if config.PathPrefix == "" {
		config.PathPrefix = "/"
	}
	if config.Status == 0 {
		config.Status = http.StatusOK
	}
	return &AccessPoint{config: config}
}

func (x *AccessPoint) Router() http.Handler {
	router := chi.NewMux()
	router.Route(x.config.PathPrefix, func(r chi.Router) {
		// same path the OpenEPaperLink firmware serves
		r.Post("/imgupload", x.ImageUploadHandler)
		r.Get("/v1/uploads", x.UploadsHandler)
		r.Get("/v1/uploads/{mac}/image", x.ImageHandler)
	})
	return router
}

func (x *AccessPoint) ImageUploadHandler(w http.ResponseWriter, r *http.Request) {
	x.mutex.Lock()
	x.requests++
	x.mutex.Unlock()

	err := r.ParseMultipartForm(MAX_FORM_MEMORY)
	if err != nil {
		log.Warn().Err(err).Str("component", "accesspoint").Msg("parse multipart")
		sink.SendError(w, err, http.StatusBadRequest)
		return
	}

	mac := r.FormValue("mac")
	dither := r.FormValue("dither")
	if mac == "" || dither == "" {
		sink.SendError(w, ErrMissingField, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn().Err(err).Str("component", "accesspoint").Str("mac", mac).Msg("form file")
		sink.SendError(w, err, http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		sink.SendError(w, err, http.StatusBadRequest)
		return
	}

	upload := &base.Upload{
		Mac:         mac,
		Dither:      dither,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        len(data),
		ValidJPEG:   base.ValidateJPEG(data),
		Received:    time.Now(),
		Data:        data}

	if !upload.ValidJPEG {
		log.Warn().Str("component", "accesspoint").Str("mac", mac).Str("file", upload.FileName).Msg("invalid JPEG, tag will not render it")
	}

	x.mutex.Lock()
	x.uploads = append(x.uploads, upload)
	x.mutex.Unlock()

	if x.config.SaveDir != "" {
		fileName := filepath.Join(x.config.SaveDir, filepath.Base(mac)+".jpg")
		if err := os.WriteFile(fileName, data, 0644); err != nil {
			log.Error().Err(err).Str("component", "accesspoint").Str("file", fileName).Msg("save image")
		}
	}

	log.Info().Str("component", "accesspoint").Str("mac", mac).Str("dither", dither).Int("size", upload.Size).Msg("image received")

	w.WriteHeader(x.config.Status)
	w.Write([]byte("Ok"))
}

func (x *AccessPoint) UploadsHandler(w http.ResponseWriter, r *http.Request) {
	sink.SendPrettyJSON(r.Context(), w, x.Uploads())
}

func (x *AccessPoint) ImageHandler(w http.ResponseWriter, r *http.Request) {
	mac := sink.Param(r, "mac")
	upload := x.Latest(mac)
	if upload == nil {
		sink.SendError(w, ErrNoImage, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	w.Write(upload.Data)
}

// Uploads returns a snapshot of everything received so far, oldest first.
func (x *AccessPoint) Uploads() []*base.Upload {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	out := make([]*base.Upload, len(x.uploads))
	copy(out, x.uploads)
	return out
}

func (x *AccessPoint) Latest(mac string) *base.Upload {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	for i := len(x.uploads) - 1; i >= 0; i-- {
		if x.uploads[i].Mac == mac {
			return x.uploads[i]
		}
	}
	return nil
}

// Requests counts upload attempts, rejected ones included.
func (x *AccessPoint) Requests() int {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return x.requests
}

func (x *AccessPoint) Count() int {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return len(x.uploads)
}

// Copyright © 2023 Sloan Childers
package base

import (
	"time"
)

const (
	DEFAULT_HOST  = "192.168.100.191"
	DEFAULT_MAC   = "0000021F19003B1D"
	DEFAULT_IMAGE = "./elstatus.jpg"
	// 2.9" OpenEPaperLink tag
	TAG_WIDTH  = 296
	TAG_HEIGHT = 128
)

type UploadConfig struct {
	Host      string        `env:"AP_HOST" envDefault:"192.168.100.191" json:"Host,omitempty"`
	Mac       string        `env:"TAG_MAC" envDefault:"0000021F19003B1D" json:"Mac,omitempty"`
	Dither    int           `env:"DITHER" envDefault:"0" json:"Dither"`
	ImagePath string        `env:"IMAGE_PATH" envDefault:"./elstatus.jpg" json:"ImagePath,omitempty"`
	Blank     bool          `env:"BLANK" envDefault:"false" json:"Blank,omitempty"`
	Stamp     bool          `env:"STAMP" envDefault:"false" json:"Stamp,omitempty"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"0s" json:"Timeout,omitempty"`
}

// Outcome is what the access point answered.
type Outcome struct {
	StatusCode int
	Body       []byte
}

func (x *Outcome) OK() bool {
	return x != nil && x.StatusCode == 200
}

// Upload is one image as received by an access point.
type Upload struct {
	Mac         string
	Dither      string
	FileName    string
	ContentType string
	Size        int
	ValidJPEG   bool
	Received    time.Time
	Data        []byte `json:"-"`
}

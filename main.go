// Copyright © 2023 Sloan Childers
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/osintami/elstatus/base"
	"github.com/osintami/elstatus/push"
	"github.com/osintami/elstatus/sink"
	"github.com/pborman/getopt"
	"github.com/rs/zerolog/log"
)

const EXIT_USAGE = 64

type Config struct {
	base.UploadConfig
	LogLevel string `env:"LOG_LEVEL" envDefault:"WARN"`
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	config := &Config{}
	if err := sink.LoadEnv(config); err != nil {
		fmt.Fprintf(stdout, "Invalid configuration: %v\n", err)
		return EXIT_USAGE
	}

	opts := getopt.New()
	configFile := opts.StringLong("config", 'c', "", "JSON file with upload settings", "file")
	host := opts.StringLong("host", 's', config.Host, "access point addr[:port]")
	mac := opts.StringLong("mac", 'm', config.Mac, "destination tag MAC")
	dither := opts.IntLong("dither", 'd', config.Dither, "1 to let the tag dither photos")
	image := opts.StringLong("image", 'i', config.ImagePath, "image to upload")
	blank := opts.BoolLong("blank", 'b', "upload a blank frame instead of the image")
	stamp := opts.BoolLong("stamp", 'x', "stamp EXIF metadata into the image")
	timeout := opts.DurationLong("timeout", 't', config.Timeout, "request timeout, 0 waits forever")
	level := opts.StringLong("log-level", 'l', config.LogLevel, "log level")
	help := opts.BoolLong("help", 'h', "show usage")

	if err := opts.Getopt(args, nil); err != nil {
		fmt.Fprintln(stderr, err)
		opts.PrintUsage(stderr)
		return EXIT_USAGE
	}
	if *help {
		opts.PrintUsage(stderr)
		return push.EXIT_OK
	}

	if err := sink.InitLogger(*level); err != nil {
		fmt.Fprintf(stdout, "Invalid log level: %s\n", *level)
		return EXIT_USAGE
	}

	upload := config.UploadConfig
	if *configFile != "" {
		if err := sink.LoadJson(*configFile, &upload); err != nil {
			fmt.Fprintf(stdout, "Invalid configuration: %v\n", err)
			return EXIT_USAGE
		}
	}

	// flags win over file, file wins over environment
	seen := func(name string) bool { return opts.Lookup(name).Seen() }
	if seen("host") {
		upload.Host = *host
	}
	if seen("mac") {
		upload.Mac = *mac
	}
	if seen("dither") {
		upload.Dither = *dither
	}
	if seen("image") {
		upload.ImagePath = *image
	}
	if seen("blank") {
		upload.Blank = *blank
	}
	if seen("stamp") {
		upload.Stamp = *stamp
	}
	if seen("timeout") {
		upload.Timeout = *timeout
	}

	log.Debug().Str("component", "main").Str("host", upload.Host).Str("mac", upload.Mac).Str("image", upload.ImagePath).Msg("config")

	outcome, err := push.NewUploader(nil).Upload(context.Background(), &upload)
	return push.Report(stdout, outcome, err)
}

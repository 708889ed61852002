// Copyright © 2023 Sloan Childers
package main

import (
	"os"

	"github.com/osintami/elstatus/accesspoint"
	"github.com/osintami/elstatus/sink"
	"github.com/rs/zerolog/log"
)

// apsim stands in for an OpenEPaperLink access point so uploads can be
// tried without hardware.
func main() {
	config := &accesspoint.Config{}
	err := sink.LoadEnv(config)
	if err != nil {
		log.Fatal().Err(err).Str("component", "apsim").Msg("environment")
		return
	}
	err = sink.InitLogger(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("component", "apsim").Msg("logger")
		return
	}

	if config.SaveDir != "" {
		err = os.MkdirAll(config.SaveDir, 0755)
		if err != nil {
			log.Fatal().Err(err).Str("component", "apsim").Str("dir", config.SaveDir).Msg("save dir")
			return
		}
	}

	ap := accesspoint.NewAccessPoint(config)

	log.Info().Str("component", "apsim").Str("addr", config.ListenAddr).Int("status", config.Status).Msg("It's alive!")

	err = sink.ListenAndServe(config.ListenAddr, "", "", ap.Router())
	if err != nil {
		log.Error().Err(err).Str("component", "apsim").Msg("listen and serve")
	}
}

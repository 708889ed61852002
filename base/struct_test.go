// Copyright © 2023 Sloan Childers
package base

import (
	"testing"

	"github.com/caarlos0/env/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadConfigDefaults(t *testing.T) {
	config := &UploadConfig{}
	require.NoError(t, env.Parse(config, env.Options{Environment: map[string]string{}}))

	assert.Equal(t, DEFAULT_HOST, config.Host)
	assert.Equal(t, DEFAULT_MAC, config.Mac)
	assert.Equal(t, DEFAULT_IMAGE, config.ImagePath)
	assert.Equal(t, 0, config.Dither)
	assert.False(t, config.Blank)
	assert.False(t, config.Stamp)
	assert.Zero(t, config.Timeout)
}

func TestOutcomeOK(t *testing.T) {
	var missing *Outcome
	assert.False(t, missing.OK())
	assert.True(t, (&Outcome{StatusCode: 200}).OK())
	assert.False(t, (&Outcome{StatusCode: 201}).OK())
	assert.False(t, (&Outcome{StatusCode: 500}).OK())
}

func TestUploadConfigEnvironment(t *testing.T) {
	config := &UploadConfig{}
	require.NoError(t, env.Parse(config, env.Options{Environment: map[string]string{
		"AP_HOST":    "10.0.0.2",
		"TAG_MAC":    "0000021F19003B1E",
		"DITHER":     "1",
		"IMAGE_PATH": "/tmp/tag.jpg",
		"TIMEOUT":    "5s",
	}}))

	assert.Equal(t, "10.0.0.2", config.Host)
	assert.Equal(t, "0000021F19003B1E", config.Mac)
	assert.Equal(t, 1, config.Dither)
	assert.Equal(t, "/tmp/tag.jpg", config.ImagePath)
	assert.Equal(t, "5s", config.Timeout.String())
}

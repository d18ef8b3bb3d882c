package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"test",
		"-a", ":7777",
		"-d", "postgres://x",
		"-n", "nats://y:4222",
		"-v", "vids",
		"-t", "thumbs",
		"-x", "5",
	}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":7777", c.EndpointAddrGRPC)
	assert.Equal(t, "postgres://x", c.DatabaseDSN)
	assert.Equal(t, "nats://y:4222", c.NATSURL)
	assert.Equal(t, "vids", c.VideoBucket)
	assert.Equal(t, "thumbs", c.ThumbnailBucket)
	assert.Equal(t, 5*time.Minute, c.PresignExpiry)
}

func TestParseFlags_KeepsDefaultsWithoutFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"test"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, 15*time.Minute, c.PresignExpiry)
}

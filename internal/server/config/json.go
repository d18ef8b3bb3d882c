package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/nathanjchan/dothething-backend/internal/flagx"
	"github.com/nathanjchan/dothething-backend/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing both
// string values such as "15m" and integer nanoseconds. After unmarshalling,
// its fields are copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddrGRPC    string         `json:"endpoint_addr_grpc"`
	DatabaseDSN         string         `json:"database_dsn"`
	NATSURL             string         `json:"nats_url"`
	UploadSubject       string         `json:"upload_subject"`
	S3RootUser          string         `json:"s3_root_user"`
	S3RootPassword      string         `json:"s3_root_password"`
	S3Region            string         `json:"s3_region"`
	S3BaseEndpoint      string         `json:"s3_base_endpoint"`
	VideoBucket         string         `json:"video_bucket"`
	ThumbnailBucket     string         `json:"thumbnail_bucket"`
	DefaultThumbnailKey string         `json:"default_thumbnail_key"`
	PresignExpiry       timex.Duration `json:"presign_expiry"`
	GoogleClientID      string         `json:"google_client_id"`
	SessionSecret       string         `json:"session_secret"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.NATSURL = c.NATSURL
	config.UploadSubject = c.UploadSubject
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.VideoBucket = c.VideoBucket
	config.ThumbnailBucket = c.ThumbnailBucket
	config.DefaultThumbnailKey = c.DefaultThumbnailKey
	config.PresignExpiry = time.Duration(c.PresignExpiry.Duration)
	config.GoogleClientID = c.GoogleClientID
	config.SessionSecret = c.SessionSecret
}

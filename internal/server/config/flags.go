package config

import (
	"flag"
	"os"
	"time"

	"github.com/nathanjchan/dothething-backend/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-n string   NATS URL
//	-j string   NATS subject for upload-finalized notifications
//	-u string   S3 root user
//	-p string   S3 root password
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-v string   video bucket
//	-t string   thumbnail bucket
//	-f string   default thumbnail key
//	-x int      presign expiry, minutes
//	-i string   Google OAuth client ID
//	-s string   session secret (dev HS256 verifier)
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-a", "-d", "-n", "-j", "-u", "-p", "-g", "-e", "-v", "-t", "-f", "-x", "-i", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.NATSURL, "n", config.NATSURL, "NATS URL")
	fs.StringVar(&config.UploadSubject, "j", config.UploadSubject, "NATS subject for upload notifications")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.VideoBucket, "v", config.VideoBucket, "video bucket")
	fs.StringVar(&config.ThumbnailBucket, "t", config.ThumbnailBucket, "thumbnail bucket")
	fs.StringVar(&config.DefaultThumbnailKey, "f", config.DefaultThumbnailKey, "default thumbnail key")

	presignExpiry := fs.Int("x", int(config.PresignExpiry.Minutes()), "presign expiry (in minutes)")

	fs.StringVar(&config.GoogleClientID, "i", config.GoogleClientID, "Google OAuth client ID")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session secret")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.PresignExpiry = time.Duration(*presignExpiry) * time.Minute
}

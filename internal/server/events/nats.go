package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/nathanjchan/dothething-backend/internal/logging"
	sc "github.com/nathanjchan/dothething-backend/internal/server/config"
)

// seam for tests
var natsConnect = nats.Connect

// processTimeout bounds one upload's pipeline run. Downloading the media and
// running the frame grab dominate; anything past this is stuck.
const processTimeout = 2 * time.Minute

// queueGroup makes horizontally scaled servers share the subject instead of
// each processing every upload.
const queueGroup = "ingest"

// UploadEvent is the payload published when an object upload is finalized.
type UploadEvent struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// UploadProcessor consumes one finalized upload.
type UploadProcessor interface {
	ProcessUpload(ctx context.Context, bucket, key string) error
}

// NatsListener subscribes to upload-finalized notifications and feeds them to
// the ingestion pipeline.
type NatsListener struct {
	config  *sc.Config
	service UploadProcessor
	logger  logging.Logger
}

// NewNatsListener constructs a NatsListener.
func NewNatsListener(config *sc.Config, service UploadProcessor, logger logging.Logger) *NatsListener {
	return &NatsListener{
		config:  config,
		service: service,
		logger:  logger.With("module", "events"),
	}
}

// Run connects to the broker and consumes the upload subject until ctx is
// cancelled. In-flight messages drain before it returns.
func (l *NatsListener) Run(ctx context.Context) error {
	conn, err := natsConnect(l.config.NATSURL)
	if err != nil {
		return fmt.Errorf("nats connect: %w", err)
	}
	defer conn.Close()

	sub, err := conn.QueueSubscribe(l.config.UploadSubject, queueGroup, l.handleMessage)
	if err != nil {
		return fmt.Errorf("nats subscribe: %w", err)
	}

	l.logger.Info(ctx, "listening for uploads", "subject", l.config.UploadSubject)

	<-ctx.Done()

	if err := sub.Drain(); err != nil {
		l.logger.Warn(ctx, "error draining subscription", "error", err)
	}
	return nil
}

func (l *NatsListener) handleMessage(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	var event UploadEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		l.logger.Error(ctx, "invalid upload event", "error", err)
		return
	}
	if event.Bucket == "" || event.Key == "" {
		l.logger.Error(ctx, "incomplete upload event", "bucket", event.Bucket, "key", event.Key)
		return
	}

	if err := l.service.ProcessUpload(ctx, event.Bucket, event.Key); err != nil {
		l.logger.Error(ctx, "error processing upload", "key", event.Key, "error", err)
		return
	}

	l.logger.Info(ctx, "upload processed", "key", event.Key)
}

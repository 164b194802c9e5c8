// Package natsrc feeds heart-rate readings from a NATS subject.
package natsrc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"burnwatch/internal/device"
	"burnwatch/internal/logger"
)

// ErrNoConnection indicates the NATS server could not be reached.
var ErrNoConnection = errors.New("nats connection unavailable")

// Message is the JSON payload published by the ECG processor.
type Message struct {
	Subject    string  `json:"subject"`
	Ts         int64   `json:"ts"`
	HR         float64 `json:"hr"`
	Confidence *int    `json:"confidence,omitempty"`
}

// Config selects the server and subject to listen on.
type Config struct {
	URL               string
	Subject           string
	DefaultConfidence int
}

// DefaultConfig matches the ECG processor defaults.
func DefaultConfig() Config {
	return Config{
		URL:               "nats://127.0.0.1:4222",
		Subject:           "ecg.params",
		DefaultConfidence: 100,
	}
}

// Source subscribes to heart-rate messages while running.
type Source struct {
	config Config
}

// New creates a NATS-backed source.
func New(config Config) *Source {
	defaults := DefaultConfig()
	if config.URL == "" {
		config.URL = defaults.URL
	}
	if config.Subject == "" {
		config.Subject = defaults.Subject
	}
	if config.DefaultConfidence <= 0 {
		config.DefaultConfidence = defaults.DefaultConfidence
	}
	return &Source{config: config}
}

// Connect dials url with reconnects enabled forever.
func Connect(url string) (*nats.Conn, error) {
	return nats.Connect(
		url,
		nats.Name("burnwatch"),
		nats.Timeout(3*time.Second),
		nats.ReconnectWait(500*time.Millisecond),
		nats.MaxReconnects(-1),
	)
}

// Run subscribes and emits each decodable message until ctx is cancelled.
func (source *Source) Run(ctx context.Context, emit func(device.Reading)) error {
	conn, err := Connect(source.config.URL)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNoConnection, source.config.URL, err)
	}
	defer conn.Drain()

	messages := make(chan *nats.Msg, 64)
	subscription, err := conn.ChanSubscribe(source.config.Subject, messages)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", source.config.Subject, err)
	}
	defer subscription.Unsubscribe()

	logger.Debug("Listening for heart-rate messages", "url", source.config.URL, "subject", source.config.Subject)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-messages:
			reading, err := Decode(msg.Data, source.config.DefaultConfidence)
			if err != nil {
				logger.Debug("Dropping heart-rate message", "error", err)
				continue
			}
			emit(reading)
		}
	}
}

// Decode parses a processor message. Messages without a confidence get
// defaultConfidence.
func Decode(data []byte, defaultConfidence int) (device.Reading, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return device.Reading{}, fmt.Errorf("decode heart-rate message: %w", err)
	}
	confidence := defaultConfidence
	if msg.Confidence != nil {
		confidence = *msg.Confidence
	}
	return device.Reading{Confidence: confidence, BPM: msg.HR}, nil
}

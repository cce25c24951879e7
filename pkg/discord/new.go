package discord

import (
	"errors"
	"net/http"
	"time"

	"broadcast-srv/pkg/log"
)

// NewWebhook creates a new webhook descriptor.
func NewWebhook(id, token string) (*Webhook, error) {
	if id == "" || token == "" {
		return nil, errors.New("id and token are required")
	}
	return &Webhook{ID: id, Token: token}, nil
}

// New creates a new Discord webhook client with the provided logger and webhook.
// Logger can be nil, but logging will be skipped if not provided.
func New(l log.Logger, webhook *Webhook) (*Discord, error) {
	if webhook == nil {
		return nil, errors.New("webhook is required")
	}
	if webhook.ID == "" || webhook.Token == "" {
		return nil, errors.New("webhook ID and token are required")
	}

	config := DefaultConfig()
	client := &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}

	return &Discord{
		l:       l,
		webhook: webhook,
		config:  config,
		client:  client,
	}, nil
}

// Close closes idle connections in the HTTP client.
func (d *Discord) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

// Package telegram implements monitor.Notifier on top of the Telegram Bot
// API, delivering wallet activity alerts as HTML formatted chat messages.
package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gabapcia/tronwatch/internal/monitor"
)

// DefaultBaseURL is the public Telegram Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// ErrSendFailed indicates that Telegram rejected the message.
var ErrSendFailed = errors.New("telegram send failed")

// notifier delivers alerts through the Telegram Bot API.
type notifier struct {
	httpClient *http.Client
	baseURL    string
	token      string
	chatID     string
}

var _ monitor.Notifier = (*notifier)(nil)

// config holds internal settings for the Telegram notifier.
type config struct {
	baseURL string
}

// Option defines a functional option for configuring the Telegram notifier.
type Option func(*config)

// WithBaseURL overrides the Telegram Bot API endpoint. Default:
// DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *config) {
		c.baseURL = u
	}
}

// NewNotifier creates a Telegram notifier that sends messages to the given
// chat using the given bot token.
func NewNotifier(httpClient *http.Client, token, chatID string, opts ...Option) *notifier {
	cfg := config{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &notifier{
		httpClient: httpClient,
		baseURL:    cfg.baseURL,
		token:      token,
		chatID:     chatID,
	}
}

// sendMessageResponse is the relevant part of the Bot API response envelope.
type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// sendMessage posts one HTML formatted message to the configured chat.
func (n *notifier) sendMessage(ctx context.Context, text string) error {
	form := url.Values{
		"chat_id":                  []string{n.chatID},
		"text":                     []string{text},
		"parse_mode":               []string{"HTML"},
		"disable_web_page_preview": []string{"true"},
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s", ErrSendFailed, res.Status)
	}

	var payload sendMessageResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return err
	}

	if !payload.OK {
		return fmt.Errorf("%w: %s", ErrSendFailed, payload.Description)
	}

	return nil
}

// NotifyMonitorStarted implements monitor.Notifier.
func (n *notifier) NotifyMonitorStarted(ctx context.Context, wallet string, interval time.Duration) error {
	return n.sendMessage(ctx, formatStartup(wallet, interval))
}

// NotifyEvent implements monitor.Notifier.
func (n *notifier) NotifyEvent(ctx context.Context, event monitor.Event) error {
	return n.sendMessage(ctx, formatEvent(event))
}

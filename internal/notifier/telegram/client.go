// Package telegram implements the notification sink over the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/troublescope/github2gram/config"
	"github.com/troublescope/github2gram/internal/entities"

	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Second

// Client is a minimal Bot API client covering sendMessage and getMe.
type Client struct {
	log     *zap.SugaredLogger
	baseURL string
	token   string
	httpc   *http.Client
}

// New builds a Client from configuration. A missing bot token is not an error
// here; sends degrade to deterministic failure at the point of use.
func New(log *zap.SugaredLogger, cfg *config.Config) *Client {
	timeout := cfg.Telegram.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		log:     log,
		baseURL: cfg.Telegram.APIBaseURL,
		token:   cfg.Telegram.BotToken,
		httpc:   &http.Client{Timeout: timeout},
	}
}

type inlineButton struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type inlineKeyboard struct {
	InlineKeyboard [][]inlineButton `json:"inline_keyboard"`
}

type sendMessageRequest struct {
	ChatID                string          `json:"chat_id"`
	Text                  string          `json:"text"`
	ParseMode             string          `json:"parse_mode"`
	DisableWebPagePreview bool            `json:"disable_web_page_preview"`
	ReplyMarkup           *inlineKeyboard `json:"reply_markup,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts one Markdown message with optional inline link buttons.
func (c *Client) Send(ctx context.Context, chatID string, msg entities.Message) error {
	if c.token == "" {
		c.log.Warnw("telegram bot token is not configured, dropping notification", "chat_id", chatID)
		return fmt.Errorf("telegram bot token: %w", entities.ErrNotConfigured)
	}

	req := sendMessageRequest{
		ChatID:                chatID,
		Text:                  msg.Text,
		ParseMode:             "Markdown",
		DisableWebPagePreview: true,
		ReplyMarkup:           toKeyboard(msg.Buttons),
	}
	return c.call(ctx, http.MethodPost, "sendMessage", req)
}

// Probe checks credential validity and API reachability via getMe.
func (c *Client) Probe(ctx context.Context) error {
	if c.token == "" {
		return fmt.Errorf("telegram bot token: %w", entities.ErrNotConfigured)
	}
	return c.call(ctx, http.MethodGet, "getMe", nil)
}

func (c *Client) call(ctx context.Context, method, apiMethod string, payload any) error {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", apiMethod, err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, apiMethod)
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", apiMethod, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", apiMethod, err)
	}
	defer resp.Body.Close()

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode %s response (status %d): %w", apiMethod, resp.StatusCode, err)
	}
	if !out.OK {
		return fmt.Errorf("%s rejected (status %d): %s", apiMethod, resp.StatusCode, out.Description)
	}
	return nil
}

func toKeyboard(layout *entities.ButtonLayout) *inlineKeyboard {
	if layout == nil || len(layout.Rows) == 0 {
		return nil
	}
	rows := make([][]inlineButton, 0, len(layout.Rows))
	for _, row := range layout.Rows {
		btns := make([]inlineButton, 0, len(row))
		for _, b := range row {
			btns = append(btns, inlineButton{Text: b.Label, URL: b.URL})
		}
		rows = append(rows, btns)
	}
	return &inlineKeyboard{InlineKeyboard: rows}
}

package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const DefaultAPI = "https://api.telegram.org"

var ErrMissingToken = errors.New("telegram bot token is not set (TELOXIDE_TOKEN)")

// Client sends messages through the Telegram Bot API.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

func NewClient(api, token string) *Client {
	if api == "" {
		api = DefaultAPI
	}
	return &Client{
		endpoint: strings.TrimRight(api, "/") + "/bot%s/%s",
		token:    token,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// ctxClient binds every bot API request to ctx; the SDK itself takes none.
type ctxClient struct {
	ctx  context.Context
	http *http.Client
}

func (c ctxClient) Do(req *http.Request) (*http.Response, error) {
	return c.http.Do(req.WithContext(c.ctx))
}

func (c *Client) bot(ctx context.Context) (*tgbotapi.BotAPI, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}
	bot, err := tgbotapi.NewBotAPIWithClient(c.token, c.endpoint, ctxClient{ctx: ctx, http: c.http})
	if err != nil {
		return nil, fmt.Errorf("telegram login: %w", c.redact(err))
	}
	return bot, nil
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if c.token == "" {
		return ErrMissingToken
	}
	if strings.TrimSpace(text) == "" {
		return errors.New("message text is empty")
	}

	bot, err := c.bot(ctx)
	if err != nil {
		return err
	}
	if _, err := bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, c.redact(err))
	}
	return nil
}

// redact strips the token, which transport errors carry inside the request URL.
func (c *Client) redact(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, c.token) {
		return err
	}
	return errors.New(strings.ReplaceAll(msg, c.token, "<token>"))
}

package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

const defaultTelegramAPIBase = "https://api.telegram.org"

// Telegram pushes journal alerts to a pre-configured chat or channel.
// Delivery is single-shot: callers treating the alert as best-effort
// decide what to do with a returned error.
type Telegram struct {
	BotToken string
	ChatID   string
	// APIBase overrides the Telegram API host, for tests.
	APIBase string
	Client  *http.Client
}

// NewTelegram builds a Telegram notifier with a 15s request timeout.
func NewTelegram(botToken, chatID string) *Telegram {
	return &Telegram{
		BotToken: botToken,
		ChatID:   chatID,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether both credentials are present.
func (t *Telegram) Configured() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// SendText sends one Markdown message to the configured chat.
func (t *Telegram) SendText(text string) error {
	if !t.Configured() {
		return fmt.Errorf("telegram credentials not configured")
	}
	base := t.APIBase
	if base == "" {
		base = defaultTelegramAPIBase
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", base, t.BotToken)

	payload := map[string]any{
		"chat_id":    t.ChatID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := t.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode/100 != 2 || !gjson.GetBytes(raw, "ok").Bool() {
		desc := gjson.GetBytes(raw, "description").String()
		if desc == "" {
			desc = resp.Status
		}
		return fmt.Errorf("telegram sendMessage status=%d: %s", resp.StatusCode, desc)
	}
	return nil
}

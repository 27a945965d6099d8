package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"shop-relay/internal/dtos"
	"time"
)

var httpClient = &http.Client{
	Timeout: 10 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 25,
		IdleConnTimeout:     30 * time.Second,
		ForceAttemptHTTP2:   true,
	},
}

type Telegram struct {
	apiURL string
	token  string
}

func NewTelegram(apiURL, token string) *Telegram {
	return &Telegram{
		apiURL: apiURL,
		token:  token,
	}
}

func (t *Telegram) SendMessage(ctx context.Context, chatID int64, text string, markup *dtos.InlineKeyboardMarkup) error {
	return t.call(ctx, "sendMessage", dtos.SendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   "Markdown",
		ReplyMarkup: markup,
	})
}

func (t *Telegram) AnswerCallbackQuery(ctx context.Context, callbackQueryID, text string) error {
	return t.call(ctx, "answerCallbackQuery", dtos.AnswerCallbackQueryRequest{
		CallbackQueryID: callbackQueryID,
		Text:            text,
	})
}

func (t *Telegram) SetWebhook(ctx context.Context, webhookURL, secretToken string) error {
	return t.call(ctx, "setWebhook", dtos.SetWebhookRequest{
		URL:         webhookURL,
		SecretToken: secretToken,
	})
}

func (t *Telegram) DeleteWebhook(ctx context.Context, dropPendingUpdates bool) error {
	return t.call(ctx, "deleteWebhook", dtos.DeleteWebhookRequest{
		DropPendingUpdates: dropPendingUpdates,
	})
}

func (t *Telegram) call(ctx context.Context, method string, payload interface{}) error {
	url := fmt.Sprintf("%s/bot%s/%s", t.apiURL, t.token, method)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", method, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send %s request: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram %s returned status %d: %s", method, resp.StatusCode, string(body))
	}

	var response dtos.TelegramResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}

	if !response.Ok {
		return fmt.Errorf("telegram %s rejected: %s", method, response.Description)
	}

	return nil
}

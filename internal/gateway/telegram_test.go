package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-relay/internal/dtos"
)

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotBody dtos.SendMessageRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("cannot decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(dtos.TelegramResponse{Ok: true})
	}))
	defer ts.Close()

	tg := NewTelegram(ts.URL, "bot-token")

	markup := &dtos.InlineKeyboardMarkup{
		InlineKeyboard: [][]dtos.InlineKeyboardButton{
			{{Text: "محصول ۱ — 50 USDT", CallbackData: "buy:p1"}},
		},
	}

	if err := tg.SendMessage(context.Background(), 42, "hello", markup); err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}

	if gotPath != "/botbot-token/sendMessage" {
		t.Errorf("path = %q, want /botbot-token/sendMessage", gotPath)
	}
	if gotBody.ChatID != 42 || gotBody.Text != "hello" {
		t.Errorf("request body = %+v", gotBody)
	}
	if gotBody.ParseMode != "Markdown" {
		t.Errorf("parse_mode = %q, want Markdown", gotBody.ParseMode)
	}
	if gotBody.ReplyMarkup == nil || len(gotBody.ReplyMarkup.InlineKeyboard) != 1 {
		t.Errorf("reply markup not forwarded: %+v", gotBody.ReplyMarkup)
	}
}

func TestSendMessageAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dtos.TelegramResponse{Ok: false, Description: "Forbidden: bot was blocked by the user"})
	}))
	defer ts.Close()

	tg := NewTelegram(ts.URL, "bot-token")

	err := tg.SendMessage(context.Background(), 42, "hello", nil)
	if err == nil {
		t.Fatal("SendMessage accepted an ok:false envelope")
	}
}

func TestWebhookLifecycle(t *testing.T) {
	var calls []string
	var setBody dtos.SetWebhookRequest
	var deleteBody dtos.DeleteWebhookRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		switch r.URL.Path {
		case "/botbot-token/setWebhook":
			json.NewDecoder(r.Body).Decode(&setBody)
		case "/botbot-token/deleteWebhook":
			json.NewDecoder(r.Body).Decode(&deleteBody)
		}
		json.NewEncoder(w).Encode(dtos.TelegramResponse{Ok: true})
	}))
	defer ts.Close()

	tg := NewTelegram(ts.URL, "bot-token")

	if err := tg.SetWebhook(context.Background(), "https://shop.example.com/webhook/telegram", "s3cret"); err != nil {
		t.Fatalf("SetWebhook returned error: %v", err)
	}
	if setBody.URL != "https://shop.example.com/webhook/telegram" || setBody.SecretToken != "s3cret" {
		t.Errorf("setWebhook body = %+v", setBody)
	}

	if err := tg.DeleteWebhook(context.Background(), true); err != nil {
		t.Fatalf("DeleteWebhook returned error: %v", err)
	}
	if !deleteBody.DropPendingUpdates {
		t.Error("deleteWebhook did not drop pending updates")
	}

	if len(calls) != 2 {
		t.Fatalf("made %d calls, want 2", len(calls))
	}
}

func TestAnswerCallbackQuery(t *testing.T) {
	var gotBody dtos.AnswerCallbackQueryRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(dtos.TelegramResponse{Ok: true})
	}))
	defer ts.Close()

	tg := NewTelegram(ts.URL, "bot-token")

	if err := tg.AnswerCallbackQuery(context.Background(), "cb1", ""); err != nil {
		t.Fatalf("AnswerCallbackQuery returned error: %v", err)
	}
	if gotBody.CallbackQueryID != "cb1" {
		t.Errorf("callback_query_id = %q, want cb1", gotBody.CallbackQueryID)
	}
}

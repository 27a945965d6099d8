package gateway

import (
	"context"
	"shop-relay/internal/dtos"
)

type TelegramInterface interface {
	SendMessage(ctx context.Context, chatID int64, text string, markup *dtos.InlineKeyboardMarkup) error
	AnswerCallbackQuery(ctx context.Context, callbackQueryID, text string) error
	SetWebhook(ctx context.Context, webhookURL, secretToken string) error
	DeleteWebhook(ctx context.Context, dropPendingUpdates bool) error
}

type CryptoPayInterface interface {
	CreateInvoice(ctx context.Context, invoice dtos.CreateInvoiceRequest) (*dtos.Invoice, error)
	Close()
}

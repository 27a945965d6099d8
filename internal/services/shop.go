package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"shop-relay/internal/catalog"
	"shop-relay/internal/dtos"
	internalErrors "shop-relay/internal/errors"
	"shop-relay/internal/gateway"
	"shop-relay/internal/metrics"
	"shop-relay/internal/order"
)

const buyPrefix = "buy:"

const greetingText = "سلام! به فروشگاه خوش اومدی. یکی از محصولات زیر رو انتخاب کن:"

type ShopService struct {
	tg      gateway.TelegramInterface
	cp      gateway.CryptoPayInterface
	catalog *catalog.Catalog
}

func NewShopService(
	tg gateway.TelegramInterface,
	cp gateway.CryptoPayInterface,
	c *catalog.Catalog,
) *ShopService {
	return &ShopService{
		tg:      tg,
		cp:      cp,
		catalog: c,
	}
}

// HandleUpdate routes one inbound chat update. Updates that are
// neither a /start command nor a buy callback are ignored.
func (s *ShopService) HandleUpdate(ctx context.Context, update *dtos.Update) error {
	switch {
	case update.Message != nil && isStartCommand(update.Message.Text):
		return s.handleStart(ctx, update.Message)
	case update.CallbackQuery != nil && strings.HasPrefix(update.CallbackQuery.Data, buyPrefix):
		return s.handleBuy(ctx, update.CallbackQuery)
	}

	return nil
}

func isStartCommand(text string) bool {
	return text == "/start" || strings.HasPrefix(text, "/start ")
}

func (s *ShopService) handleStart(ctx context.Context, msg *dtos.Message) error {
	if err := s.tg.SendMessage(ctx, msg.Chat.ID, greetingText, s.shopKeyboard()); err != nil {
		return fmt.Errorf("sending shop keyboard: %w", err)
	}

	return nil
}

func (s *ShopService) shopKeyboard() *dtos.InlineKeyboardMarkup {
	products := s.catalog.All()

	rows := make([][]dtos.InlineKeyboardButton, 0, len(products))
	for _, p := range products {
		rows = append(rows, []dtos.InlineKeyboardButton{{
			Text:         fmt.Sprintf("%s — %d %s", p.Title, p.Price, p.Asset),
			CallbackData: buyPrefix + p.ID,
		}})
	}

	return &dtos.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (s *ShopService) handleBuy(ctx context.Context, cq *dtos.CallbackQuery) error {
	productID := strings.TrimPrefix(cq.Data, buyPrefix)

	chatID := cq.From.ID
	if cq.Message != nil {
		chatID = cq.Message.Chat.ID
	}

	product, err := s.catalog.Lookup(productID)
	if err != nil {
		slog.Error("buy callback for unknown product", "product", productID, "user", cq.From.ID)
		return s.tg.AnswerCallbackQuery(ctx, cq.ID, "این محصول موجود نیست.")
	}

	payload := order.Payload{
		UserID:    cq.From.ID,
		ProductID: product.ID,
	}

	invoice, err := s.cp.CreateInvoice(ctx, dtos.CreateInvoiceRequest{
		Asset:          product.Asset,
		Amount:         strconv.Itoa(product.Price),
		Description:    fmt.Sprintf("%s - سفارش کاربر %d", product.Title, cq.From.ID),
		Payload:        payload.Encode(),
		AllowAnonymous: true,
	})
	if err != nil {
		slog.Error("invoice creation failed", "product", product.ID, "user", cq.From.ID, "error", err)
		return s.tg.AnswerCallbackQuery(ctx, cq.ID, "خطا در ایجاد فاکتور. لطفاً بعداً دوباره تلاش کن.")
	}

	metrics.InvoicesCreatedTotal.Inc()

	text := fmt.Sprintf(
		"✅ سفارش: *%s*\nمبلغ: *%d %s*\n\nبرای پرداخت روی لینک زیر بزن:\n%s\n\nپس از پرداخت، تأییدیه به‌صورت خودکار ارسال می‌شود.",
		product.Title, product.Price, product.Asset, invoice.PayURL,
	)
	if err := s.tg.SendMessage(ctx, chatID, text, nil); err != nil {
		return fmt.Errorf("sending order message: %w", err)
	}

	return s.tg.AnswerCallbackQuery(ctx, cq.ID, "")
}

// ConfirmPayment relays a provider status event back to the buyer. Any
// status other than paid is acknowledged without side effects.
func (s *ShopService) ConfirmPayment(ctx context.Context, status, rawPayload string) error {
	if status != dtos.InvoiceStatusPaid {
		return nil
	}

	payload, err := order.Decode(rawPayload)
	if err != nil {
		return err
	}

	product, err := s.catalog.Lookup(payload.ProductID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrProductNotFound) {
			return fmt.Errorf("paid invoice references unknown product %q: %w", payload.ProductID, err)
		}
		return err
	}

	text := fmt.Sprintf(
		"🎉 پرداخت شما برای *%s* با مبلغ *%d %s* دریافت شد. سفارش ثبت گردید.",
		product.Title, product.Price, product.Asset,
	)
	if err := s.tg.SendMessage(ctx, payload.UserID, text, nil); err != nil {
		return fmt.Errorf("sending confirmation to user %d: %w", payload.UserID, err)
	}

	metrics.ConfirmationsSentTotal.Inc()

	return nil
}

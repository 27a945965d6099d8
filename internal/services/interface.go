package services

import (
	"context"
	"shop-relay/internal/dtos"
)

type ShopInterface interface {
	HandleUpdate(ctx context.Context, update *dtos.Update) error
	ConfirmPayment(ctx context.Context, status, rawPayload string) error
}

package order

import (
	"fmt"
	"net/url"
	"strconv"

	internalErrors "shop-relay/internal/errors"
)

// Payload correlates an invoice with the user and product it was
// created for. The provider echoes the encoded form back verbatim in
// its status webhook; nothing is persisted on this side.
type Payload struct {
	UserID    int64
	ProductID string
}

// Encode renders the wire format "user=<id>&product=<pid>". Key order
// is fixed, values are query-escaped.
func (p Payload) Encode() string {
	return "user=" + strconv.FormatInt(p.UserID, 10) + "&product=" + url.QueryEscape(p.ProductID)
}

func Decode(raw string) (Payload, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", internalErrors.ErrBadInvoicePayload, err)
	}

	userStr := values.Get("user")
	productID := values.Get("product")
	if userStr == "" || productID == "" {
		return Payload{}, fmt.Errorf("%w: missing user or product in %q", internalErrors.ErrBadInvoicePayload, raw)
	}

	userID, err := strconv.ParseInt(userStr, 10, 64)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: user %q is not an integer", internalErrors.ErrBadInvoicePayload, userStr)
	}

	return Payload{
		UserID:    userID,
		ProductID: productID,
	}, nil
}

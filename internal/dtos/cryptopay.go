package dtos

const InvoiceStatusPaid = "paid"

type CreateInvoiceRequest struct {
	Asset          string `json:"asset"`
	Amount         string `json:"amount"`
	Description    string `json:"description,omitempty"`
	Payload        string `json:"payload,omitempty"`
	AllowAnonymous bool   `json:"allow_anonymous"`
}

type Invoice struct {
	InvoiceID int64  `json:"invoice_id"`
	Status    string `json:"status"`
	Payload   string `json:"payload,omitempty"`
	PayURL    string `json:"pay_url"`
}

// InvoiceStatusEvent is the webhook body Crypto Pay posts when an
// invoice changes status.
type InvoiceStatusEvent struct {
	UpdateType string  `json:"update_type,omitempty"`
	Invoice    Invoice `json:"invoice"`
}

type CryptoPayError struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type CryptoPayResponse struct {
	Ok     bool            `json:"ok"`
	Result *Invoice        `json:"result,omitempty"`
	Error  *CryptoPayError `json:"error,omitempty"`
}

// WebhookResponse is the relay's own reply envelope on the payment
// webhook endpoint.
type WebhookResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

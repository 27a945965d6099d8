package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"shop-relay/internal/dtos"
)

type CryptoPay struct {
	apiURL string
	token  string
}

func NewCryptoPay(apiURL, token string) *CryptoPay {
	return &CryptoPay{
		apiURL: apiURL,
		token:  token,
	}
}

func (cp *CryptoPay) CreateInvoice(ctx context.Context, invoice dtos.CreateInvoiceRequest) (*dtos.Invoice, error) {
	url := fmt.Sprintf("%s/createInvoice", cp.apiURL)

	jsonData, err := json.Marshal(invoice)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("creating invoice request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Crypto-Pay-API-Token", cp.token)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send invoice request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("crypto pay returned status %d: %s", resp.StatusCode, string(body))
	}

	var response dtos.CryptoPayResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.New("failed to decode invoice response body")
	}

	if !response.Ok || response.Result == nil {
		if response.Error != nil {
			return nil, fmt.Errorf("crypto pay rejected invoice: %d %s", response.Error.Code, response.Error.Name)
		}
		return nil, errors.New("crypto pay rejected invoice")
	}

	return response.Result, nil
}

// Close releases pooled connections to the provider.
func (cp *CryptoPay) Close() {
	httpClient.CloseIdleConnections()
}

package errors

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrBadInvoicePayload = errors.New("malformed invoice payload")

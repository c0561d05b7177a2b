package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

type LookupOrderRequest struct {
	TCKID string `json:"tckid"`
	Email string `json:"email"`
}

func (req *LookupOrderRequest) Normalize() {
	req.TCKID = strings.TrimSpace(req.TCKID)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
}

func (req *LookupOrderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TCKID,
			validation.Required.Error("Número de orden y email son requeridos")),
		validation.Field(&req.Email,
			validation.Required.Error("Número de orden y email son requeridos")),
	)
}

// SaveClaimRequest uses a pointer quantity so an absent field is
// distinguishable from an explicit zero.
type SaveClaimRequest struct {
	OrderID  string `json:"orderId"`
	Email    string `json:"email"`
	Quantity *int   `json:"quantity"`
}

func (req *SaveClaimRequest) Normalize() {
	req.OrderID = strings.TrimSpace(req.OrderID)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
}

func (req *SaveClaimRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.OrderID,
			validation.Required.Error("Order ID, email y cantidad de tickets son requeridos")),
		validation.Field(&req.Email,
			validation.Required.Error("Order ID, email y cantidad de tickets son requeridos")),
		validation.Field(&req.Quantity,
			validation.NotNil.Error("Order ID, email y cantidad de tickets son requeridos")),
	)
}

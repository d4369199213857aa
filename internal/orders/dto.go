package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shilpokotha/shilpokotha-backend/pkg/db/models"
	"github.com/shilpokotha/shilpokotha-backend/pkg/enums"
	"github.com/shilpokotha/shilpokotha-backend/pkg/types"
)

// OrderDTO is the transport shape of a placed order.
type OrderDTO struct {
	ID              uuid.UUID              `json:"id"`
	Items           []models.OrderLineItem `json:"items"`
	Subtotal        decimal.Decimal        `json:"subtotal"`
	ShippingCost    decimal.Decimal        `json:"shipping_cost"`
	Tax             decimal.Decimal        `json:"tax"`
	Total           decimal.Decimal        `json:"total"`
	ShippingMethod  enums.ShippingMethod   `json:"shipping_method"`
	ShippingAddress *types.Address         `json:"shipping_address,omitempty"`
	PaymentMethod   string                 `json:"payment_method,omitempty"`
	Status          enums.OrderStatus      `json:"status"`
	CreatedAt       time.Time              `json:"created_at"`
}

func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	return &OrderDTO{
		ID:              o.ID,
		Items:           append([]models.OrderLineItem(nil), o.Items...),
		Subtotal:        o.Subtotal,
		ShippingCost:    o.ShippingCost,
		Tax:             o.Tax,
		Total:           o.Total,
		ShippingMethod:  o.ShippingMethod,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shilpokotha/shilpokotha-backend/pkg/enums"
	"github.com/shilpokotha/shilpokotha-backend/pkg/types"
)

// OrderLineItem is the cart snapshot frozen into an order. Name, price and
// image are copied from the cart item at checkout time and never refreshed.
type OrderLineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// OrderLineItems is stored as a single jsonb column.
type OrderLineItems []OrderLineItem

// Order persists a placed checkout for one user.
type Order struct {
	ID              uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID          uuid.UUID            `gorm:"column:user_id;type:uuid;not null;index:orders_user_id_idx"`
	Items           OrderLineItems       `gorm:"column:items;type:jsonb;serializer:json"`
	Subtotal        decimal.Decimal      `gorm:"column:subtotal;type:numeric(12,2);not null"`
	ShippingCost    decimal.Decimal      `gorm:"column:shipping_cost;type:numeric(12,2);not null"`
	Tax             decimal.Decimal      `gorm:"column:tax;type:numeric(12,2);not null"`
	Total           decimal.Decimal      `gorm:"column:total;type:numeric(12,2);not null"`
	ShippingMethod  enums.ShippingMethod `gorm:"column:shipping_method;not null"`
	ShippingAddress *types.Address       `gorm:"column:shipping_address;type:jsonb;serializer:json"`
	PaymentMethod   string               `gorm:"column:payment_method"`
	Status          enums.OrderStatus    `gorm:"column:status;not null;default:'pending'"`
	CreatedAt       time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

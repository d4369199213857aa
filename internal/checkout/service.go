// Package checkout turns a cart into a placed order. It owns the stock
// invariant: quantities are validated against the catalog here, not in
// the cart store.
package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shilpokotha/shilpokotha-backend/internal/cart"
	"github.com/shilpokotha/shilpokotha-backend/internal/catalog"
	"github.com/shilpokotha/shilpokotha-backend/internal/orders"
	"github.com/shilpokotha/shilpokotha-backend/pkg/config"
	"github.com/shilpokotha/shilpokotha-backend/pkg/db/models"
	"github.com/shilpokotha/shilpokotha-backend/pkg/enums"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
	"github.com/shilpokotha/shilpokotha-backend/pkg/logger"
	"github.com/shilpokotha/shilpokotha-backend/pkg/types"
)

// Totals is the money breakdown shown on the checkout summary.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ShippingOption describes one delivery choice.
type ShippingOption struct {
	Method   enums.ShippingMethod `json:"method"`
	Label    string               `json:"label"`
	Cost     decimal.Decimal      `json:"cost"`
	Estimate string               `json:"estimate"`
}

// Quote is the order preview for the current cart.
type Quote struct {
	Items  []cart.Item `json:"items"`
	Totals Totals      `json:"totals"`
}

// PlaceOrderInput is the validated checkout submission.
type PlaceOrderInput struct {
	ShippingMethod  enums.ShippingMethod
	ShippingAddress types.Address
	PaymentMethod   string
}

// Service exposes checkout operations.
type Service interface {
	ShippingOptions(ctx context.Context) []ShippingOption
	Quote(ctx context.Context, userID uuid.UUID, method enums.ShippingMethod) (*Quote, error)
	PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*orders.OrderDTO, error)
}

type service struct {
	cart     cart.Service
	catalog  catalog.Service
	orders   orders.Service
	logg     *logger.Logger
	taxRate  decimal.Decimal
	standard decimal.Decimal
	express  decimal.Decimal
}

// ServiceParams bundles the checkout dependencies.
type ServiceParams struct {
	CartService    cart.Service
	CatalogService catalog.Service
	OrdersService  orders.Service
	Logger         *logger.Logger
	Config         config.CheckoutConfig
}

// NewService constructs the checkout service. Money configuration is
// parsed once here so bad values fail at startup.
func NewService(params ServiceParams) (Service, error) {
	if params.CartService == nil {
		return nil, fmt.Errorf("cart service is required")
	}
	if params.CatalogService == nil {
		return nil, fmt.Errorf("catalog service is required")
	}
	if params.OrdersService == nil {
		return nil, fmt.Errorf("orders service is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	taxRate, err := decimal.NewFromString(params.Config.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("parsing tax rate: %w", err)
	}
	standard, err := decimal.NewFromString(params.Config.StandardShipping)
	if err != nil {
		return nil, fmt.Errorf("parsing standard shipping cost: %w", err)
	}
	express, err := decimal.NewFromString(params.Config.ExpressShipping)
	if err != nil {
		return nil, fmt.Errorf("parsing express shipping cost: %w", err)
	}

	return &service{
		cart:     params.CartService,
		catalog:  params.CatalogService,
		orders:   params.OrdersService,
		logg:     params.Logger,
		taxRate:  taxRate,
		standard: standard,
		express:  express,
	}, nil
}

func (s *service) ShippingOptions(ctx context.Context) []ShippingOption {
	return []ShippingOption{
		{Method: enums.ShippingStandard, Label: "Standard Shipping", Cost: s.standard, Estimate: "3-5 business days"},
		{Method: enums.ShippingExpress, Label: "Express Shipping", Cost: s.express, Estimate: "1-2 business days"},
	}
}

// Quote prices the current cart under the chosen shipping method.
func (s *service) Quote(ctx context.Context, userID uuid.UUID, method enums.ShippingMethod) (*Quote, error) {
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid shipping method %q", method))
	}

	current, err := s.cart.Get(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	if len(current.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	return &Quote{
		Items:  current.Items,
		Totals: s.totals(current.Subtotal(), method),
	}, nil
}

// PlaceOrder validates the cart against catalog stock, persists the
// order, then clears the cart. A failed order write leaves the cart
// untouched.
func (s *service) PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*orders.OrderDTO, error) {
	if !input.ShippingMethod.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid shipping method %q", input.ShippingMethod))
	}
	if !input.ShippingAddress.Complete() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping address is incomplete")
	}

	current, err := s.cart.Get(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	if len(current.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	if err := s.validateStock(ctx, current); err != nil {
		return nil, err
	}

	totals := s.totals(current.Subtotal(), input.ShippingMethod)
	address := input.ShippingAddress

	lineItems := make(models.OrderLineItems, 0, len(current.Items))
	for _, item := range current.Items {
		lineItems = append(lineItems, models.OrderLineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
		})
	}

	placed, err := s.orders.Create(ctx, &models.Order{
		UserID:          userID,
		Items:           lineItems,
		Subtotal:        totals.Subtotal,
		ShippingCost:    totals.Shipping,
		Tax:             totals.Tax,
		Total:           totals.Total,
		ShippingMethod:  input.ShippingMethod,
		ShippingAddress: &address,
		PaymentMethod:   input.PaymentMethod,
		Status:          enums.OrderStatusPending,
	})
	if err != nil {
		return nil, err
	}

	// The order exists at this point. A failed cart clear is logged and
	// swallowed so the shopper still gets their confirmation.
	if _, err := s.cart.Clear(ctx, userID.String()); err != nil {
		s.logg.Error(s.logg.WithUserID(ctx, userID.String()), "clearing cart after checkout", err)
	}

	return placed, nil
}

// validateStock rejects the checkout when any line asks for more than
// the catalog has, or for a product that no longer exists.
func (s *service) validateStock(ctx context.Context, current cart.Cart) error {
	for _, item := range current.Items {
		product, err := s.catalog.GetProduct(ctx, item.ProductID)
		if err != nil {
			if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
				return pkgerrors.New(pkgerrors.CodeValidation,
					fmt.Sprintf("%s is no longer available", item.Name))
			}
			return err
		}
		if item.Quantity > product.Stock {
			return pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("only %d of %s in stock", product.Stock, product.Name))
		}
	}
	return nil
}

func (s *service) totals(subtotal decimal.Decimal, method enums.ShippingMethod) Totals {
	shipping := s.standard
	if method == enums.ShippingExpress {
		shipping = s.express
	}

	tax := subtotal.Mul(s.taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

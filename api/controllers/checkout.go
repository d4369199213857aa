package controllers

import (
	"net/http"

	"github.com/shilpokotha/shilpokotha-backend/api/responses"
	"github.com/shilpokotha/shilpokotha-backend/api/validators"
	checkoutsvc "github.com/shilpokotha/shilpokotha-backend/internal/checkout"
	"github.com/shilpokotha/shilpokotha-backend/pkg/enums"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
	"github.com/shilpokotha/shilpokotha-backend/pkg/logger"
	"github.com/shilpokotha/shilpokotha-backend/pkg/types"
)

// ShippingOptions lists the available shipping methods with costs.
func ShippingOptions(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.ShippingOptions(r.Context()))
	}
}

// CheckoutQuote prices the caller's cart for a shipping method without
// placing an order.
func CheckoutQuote(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		userID, err := requireUserUUID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		raw := r.URL.Query().Get("shipping_method")
		if raw == "" {
			raw = enums.ShippingStandard.String()
		}
		method, err := enums.ParseShippingMethod(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown shipping method"))
			return
		}

		quote, err := svc.Quote(r.Context(), userID, method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

// PlaceOrder converts the caller's cart into an order.
func PlaceOrder(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		userID, err := requireUserUUID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload placeOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), userID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

type placeOrderRequest struct {
	ShippingMethod  string        `json:"shipping_method" validate:"required"`
	ShippingAddress types.Address `json:"shipping_address" validate:"required"`
	PaymentMethod   string        `json:"payment_method" validate:"required"`
}

func (p placeOrderRequest) toInput() (checkoutsvc.PlaceOrderInput, error) {
	method, err := enums.ParseShippingMethod(p.ShippingMethod)
	if err != nil {
		return checkoutsvc.PlaceOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown shipping method")
	}
	return checkoutsvc.PlaceOrderInput{
		ShippingMethod:  method,
		ShippingAddress: p.ShippingAddress,
		PaymentMethod:   p.PaymentMethod,
	}, nil
}

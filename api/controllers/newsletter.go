package controllers

import (
	"net/http"

	"github.com/shilpokotha/shilpokotha-backend/api/responses"
	"github.com/shilpokotha/shilpokotha-backend/api/validators"
	newslettersvc "github.com/shilpokotha/shilpokotha-backend/internal/newsletter"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
	"github.com/shilpokotha/shilpokotha-backend/pkg/logger"
)

// SubscribeNewsletter signs an email up for the newsletter.
func SubscribeNewsletter(svc newslettersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "newsletter service unavailable"))
			return
		}

		var payload subscribeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		subscriber, err := svc.Subscribe(r.Context(), payload.Email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, subscriber)
	}
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/shilpokotha/shilpokotha-backend/api/middleware"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
)

func requireUserID(r *http.Request) (string, error) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeNotLoggedIn, "login required")
	}
	return userID, nil
}

func requireUserUUID(r *http.Request) (uuid.UUID, error) {
	userID, err := requireUserID(r)
	if err != nil {
		return uuid.Nil, err
	}
	parsed, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeNotLoggedIn, err, "invalid user id")
	}
	return parsed, nil
}

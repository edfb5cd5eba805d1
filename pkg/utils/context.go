package utils

import (
	"context"

	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"

	"github.com/google/uuid"
)

func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, apperrors.ErrUserIDNotFoundInContext
	}
	return id, nil
}

func UserRoleFromContext(ctx context.Context) (string, error) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(string)
	if !ok || role == "" {
		return "", apperrors.ErrUserIDNotFoundInContext
	}
	return role, nil
}

func UserNameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(contextkeys.UserNameKey).(string)
	return name
}

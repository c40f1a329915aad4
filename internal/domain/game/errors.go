package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/milestone-mania/game-api/internal/utils/platformerrors"
)

// Outcome kinds surfaced by the service. Each is wrapped in a PlatformError of
// the matching type so both errors.Is and status mapping work.
var (
	ErrGameNotFound           = errors.New("game not found")
	ErrAttemptNotFound        = errors.New("attempt not found")
	ErrInvalidAttemptState    = errors.New("invalid attempt state")
	ErrInsufficientMilestones = errors.New("not enough milestones to build a game")
	ErrSlugExhausted          = errors.New("could not generate a unique slug")
	ErrValidation             = errors.New("invalid request")
)

func gameNotFound(ctx context.Context, slug string) error {
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
		fmt.Sprintf("game with slug '%s' not found", slug), ErrGameNotFound,
		"3c9a7e52-1f0b-4a8e-b6d1-2e5f7c9a0b13", map[string]any{"slug": slug})
}

func attemptNotFound(ctx context.Context, id uint) error {
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
		fmt.Sprintf("attempt %d not found", id), ErrAttemptNotFound,
		"8d2f4b61-7a3c-4e9d-a0b5-6c1e8f2d4a27", map[string]any{"attempt_id": id})
}

func invalidAttemptState(ctx context.Context, message string) *platformerrors.PlatformError {
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
		message, ErrInvalidAttemptState, "b4e1c7a9-5d2f-4b6e-8a3c-9f0d1e2b5c48")
}

func insufficientMilestones(ctx context.Context, available int64) error {
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnavailable,
		fmt.Sprintf("at least %d milestones are required to create a game", MilestonesPerGame), ErrInsufficientMilestones,
		"e7a3d9c2-4b1f-4e8a-9c6d-0a2b5f8e1d36", map[string]any{"available": available})
}

func validationError(ctx context.Context, message string) error {
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
		message, ErrValidation, "1a6f8c3e-9d2b-4f7a-b5e0-3c8d1a4f6b92")
}

func internal(ctx context.Context, err error, message string) error {
	return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, message)
}

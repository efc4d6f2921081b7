package service

import (
	"errors"

	apperrors "lyra-coin-backend/internal/common/errors"
)

// ToAppError maps store errors to typed application errors. Errors that are
// already AppErrors pass through unchanged.
func ToAppError(err error) *apperrors.AppError {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, ErrTaskNotFound):
		return apperrors.Wrap(err, apperrors.ErrCodeTaskNotFound, "Task not found")
	case errors.Is(err, ErrTaskCompleted):
		return apperrors.Wrap(err, apperrors.ErrCodeTaskCompleted, "Task already completed")
	case errors.Is(err, ErrTaskInFlight):
		return apperrors.Wrap(err, apperrors.ErrCodeTaskInFlight, "Task already in progress")
	case errors.Is(err, ErrNotClaimable), errors.Is(err, ErrNotCompleting):
		return apperrors.Wrap(err, apperrors.ErrCodeRewardNotClaimable, "Reward is not claimable")
	case errors.Is(err, ErrReferralSubmitted), errors.Is(err, ErrReferralCodeExists):
		return apperrors.Wrap(err, apperrors.ErrCodeReferralLocked, "Referral code is locked")
	case errors.Is(err, ErrEmptyValue),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeBalance),
		errors.Is(err, ErrInvalidReferralCode):
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	case errors.Is(err, ErrNoUser):
		return apperrors.Wrap(err, apperrors.ErrCodeConflict, "Profile is not initialized yet")
	default:
		return apperrors.NewStorageError("store", err)
	}
}

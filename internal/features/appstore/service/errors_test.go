package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "lyra-coin-backend/internal/common/errors"
)

func TestToAppError(t *testing.T) {
	tests := []struct {
		err  error
		code apperrors.ErrorCode
	}{
		{ErrTaskNotFound, apperrors.ErrCodeTaskNotFound},
		{fmt.Errorf("wrapped: %w", ErrTaskCompleted), apperrors.ErrCodeTaskCompleted},
		{ErrTaskInFlight, apperrors.ErrCodeTaskInFlight},
		{ErrNotClaimable, apperrors.ErrCodeRewardNotClaimable},
		{ErrNotCompleting, apperrors.ErrCodeRewardNotClaimable},
		{ErrReferralSubmitted, apperrors.ErrCodeReferralLocked},
		{ErrEmptyValue, apperrors.ErrCodeValidation},
		{errors.New("connection refused"), apperrors.ErrCodeStorage},
		{apperrors.NewNotFoundError("wallet", "1"), apperrors.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, ToAppError(tt.err).Code)
		})
	}
}

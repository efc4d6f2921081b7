package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/rs/zerolog"

	appstore "lyra-coin-backend/internal/features/appstore/service"
	"lyra-coin-backend/internal/features/referral/models"
	"lyra-coin-backend/internal/metrics"
	"lyra-coin-backend/internal/utils/random"
)

const (
	codePrefix   = "ref_"
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

type StoreOpener interface {
	Open(ctx context.Context, installationID string) (*appstore.Store, error)
}

type Service struct {
	stores       StoreOpener
	deepLinkBase string
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

func NewService(stores StoreOpener, deepLinkBase string, m *metrics.Metrics, logger zerolog.Logger) *Service {
	return &Service{
		stores:       stores,
		deepLinkBase: deepLinkBase,
		metrics:      m,
		logger:       logger,
	}
}

// GenerateCode returns ref_ followed by six uniform characters from [A-Z0-9].
func GenerateCode() (string, error) {
	suffix, err := random.String(codeAlphabet, codeLength)
	if err != nil {
		return "", err
	}
	return codePrefix + suffix, nil
}

// Link builds the bot deep link for code.
func (s *Service) Link(code string) string {
	return s.deepLinkBase + "?start=" + code
}

// Get returns the installation's referral data, generating and persisting
// the code on first access.
func (s *Service) Get(ctx context.Context, installationID string) (*models.ReferralView, error) {
	st, err := s.stores.Open(ctx, installationID)
	if err != nil {
		return nil, err
	}

	state := st.Snapshot()
	if state.ReferralCode == "" {
		code, err := GenerateCode()
		if err != nil {
			return nil, err
		}
		state, err = st.SetReferralCode(ctx, code)
		switch {
		case errors.Is(err, appstore.ErrReferralCodeExists):
			// another request generated it first
			state = st.Snapshot()
		case err != nil:
			return nil, err
		default:
			s.logger.Info().
				Str("installation_id", installationID).
				Str("code", code).
				Msg("Referral code generated")
		}
	}

	return &models.ReferralView{
		Code:          state.ReferralCode,
		Link:          s.Link(state.ReferralCode),
		SubmittedCode: state.SubmittedReferralCode,
		Locked:        state.SubmittedReferralCode != "",
	}, nil
}

// Submit records the referrer's code. Only the first non-empty submission
// is kept; codes are not checked against any registry.
func (s *Service) Submit(ctx context.Context, installationID, code string) (*models.ReferralView, error) {
	st, err := s.stores.Open(ctx, installationID)
	if err != nil {
		return nil, err
	}

	if _, err := st.SetSubmittedReferralCode(ctx, code); err != nil {
		return nil, err
	}
	s.metrics.RecordReferralSubmitted()

	return s.Get(ctx, installationID)
}

// ShareLinks builds the social share URLs for origin.
func ShareLinks(origin string) models.ShareLinks {
	enc := url.QueryEscape(origin)
	return models.ShareLinks{
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + enc,
		Twitter:  "https://twitter.com/intent/tweet?url=" + enc + "&text=" + url.QueryEscape("Check out LYRA COIN!"),
		Telegram: "https://t.me/share/url?url=" + enc + "&text=" + url.QueryEscape("Join LYRA COIN now!"),
	}
}

package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	store "lyra-coin-backend/internal/features/appstore/models"
	appstore "lyra-coin-backend/internal/features/appstore/service"
	"lyra-coin-backend/internal/features/user/models"
	"lyra-coin-backend/internal/features/user/repository"
)

type StoreOpener interface {
	Open(ctx context.Context, installationID string) (*appstore.Store, error)
}

type Service struct {
	repo   repository.UserRepository
	stores StoreOpener
	logger zerolog.Logger
	now    func() time.Time
}

func NewService(repo repository.UserRepository, stores StoreOpener, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		stores: stores,
		logger: logger,
		now:    time.Now,
	}
}

// LevelFor ranks a balance: 500 and up is advanced, 200 and up intermediate.
func LevelFor(balance int) models.Level {
	switch {
	case balance >= 500:
		return models.Level{Number: 3, Name: "advanced", TranslationKey: "levelAdvanced"}
	case balance >= 200:
		return models.Level{Number: 2, Name: "intermediate", TranslationKey: "levelIntermediate"}
	default:
		return models.Level{Number: 1, Name: "beginner", TranslationKey: "levelBeginner"}
	}
}

// Bootstrap seeds the installation's store user on first sight and upserts
// the remote profile. The store is seeded even if the upsert fails.
func (s *Service) Bootstrap(ctx context.Context, tgUser initdata.User) error {
	st, err := s.stores.Open(ctx, strconv.FormatInt(tgUser.ID, 10))
	if err != nil {
		return err
	}

	if st.Snapshot().User == nil {
		u := store.User{
			ID:        strconv.FormatInt(tgUser.ID, 10),
			Username:  tgUser.Username,
			FirstName: tgUser.FirstName,
			LastName:  tgUser.LastName,
			FullName:  strings.TrimSpace(tgUser.FirstName + " " + tgUser.LastName),
		}
		if _, err := st.SetUser(ctx, u); err != nil {
			return err
		}
		s.logger.Info().Int64("user_id", tgUser.ID).Msg("Store user initialized")
	}

	_, err = s.GetOrCreateUser(ctx, tgUser)
	return err
}

// GetOrCreateUser upserts the profile, writing only when something changed.
func (s *Service) GetOrCreateUser(ctx context.Context, tgUser initdata.User) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, tgUser.ID)
	if err == nil {
		if user.Username != tgUser.Username || user.FirstName != tgUser.FirstName ||
			user.LastName != tgUser.LastName || user.PhotoURL != tgUser.PhotoURL ||
			user.IsPremium != tgUser.IsPremium || user.LanguageCode != tgUser.LanguageCode {
			user.Username = tgUser.Username
			user.FirstName = tgUser.FirstName
			user.LastName = tgUser.LastName
			user.PhotoURL = tgUser.PhotoURL
			user.IsPremium = tgUser.IsPremium
			user.LanguageCode = tgUser.LanguageCode
			user.UpdatedAt = s.now()
			if err := s.repo.Upsert(ctx, user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	now := s.now()
	newUser := &models.User{
		ID:           tgUser.ID,
		Username:     tgUser.Username,
		FirstName:    tgUser.FirstName,
		LastName:     tgUser.LastName,
		PhotoURL:     tgUser.PhotoURL,
		LanguageCode: tgUser.LanguageCode,
		IsPremium:    tgUser.IsPremium,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Upsert(ctx, newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

// Profile builds the profile page. authErr is the sync error of the current
// request, if any.
func (s *Service) Profile(ctx context.Context, tgUser initdata.User, authErr error) (*models.ProfileResponse, error) {
	st, err := s.stores.Open(ctx, strconv.FormatInt(tgUser.ID, 10))
	if err != nil {
		return nil, err
	}
	state := st.Snapshot()

	resp := &models.ProfileResponse{
		ID:        strconv.FormatInt(tgUser.ID, 10),
		Username:  tgUser.Username,
		FirstName: tgUser.FirstName,
		LastName:  tgUser.LastName,
		PhotoURL:  tgUser.PhotoURL,
		Balance:   state.Balance,
		Level:     LevelFor(state.Balance),
	}
	if state.User != nil {
		resp.FullName = state.User.FullName
	}
	resp.DisplayName = resp.FullName
	if resp.DisplayName == "" {
		resp.DisplayName = resp.FirstName
	}
	for _, t := range state.Tasks {
		if t.Completed {
			resp.CompletedTasks++
		}
	}
	if authErr != nil {
		resp.AuthError = authErr.Error()
	}
	return resp, nil
}

func (s *Service) UpdateFullName(ctx context.Context, tgUser initdata.User, name string) (*models.ProfileResponse, error) {
	st, err := s.stores.Open(ctx, strconv.FormatInt(tgUser.ID, 10))
	if err != nil {
		return nil, err
	}
	if _, err := st.UpdateFullName(ctx, name); err != nil {
		return nil, err
	}
	return s.Profile(ctx, tgUser, nil)
}

func (s *Service) Balance(ctx context.Context, installationID string) (int, error) {
	st, err := s.stores.Open(ctx, installationID)
	if err != nil {
		return 0, err
	}
	return st.Snapshot().Balance, nil
}

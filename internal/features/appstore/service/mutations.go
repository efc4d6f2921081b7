package service

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"lyra-coin-backend/internal/features/appstore/models"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTaskCompleted       = errors.New("task already completed")
	ErrTaskInFlight        = errors.New("task already in progress")
	ErrNotClaimable        = errors.New("reward is not claimable")
	ErrNotCompleting       = errors.New("task has no running countdown")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrNegativeBalance     = errors.New("balance must not be negative")
	ErrInvalidReferralCode = errors.New("referral code must match ref_[A-Z0-9]{6}")
	ErrReferralCodeExists  = errors.New("referral code already generated")
	ErrReferralSubmitted   = errors.New("referrer code already submitted")
	ErrEmptyValue          = errors.New("value must not be empty")
	ErrNoUser              = errors.New("store has no user")
	ErrCorruptSnapshot     = errors.New("persisted snapshot is corrupt")
)

var referralCodePattern = regexp.MustCompile(`^ref_[A-Z0-9]{6}$`)

// ValidReferralCode reports whether code has the ref_XXXXXX shape.
func ValidReferralCode(code string) bool {
	return referralCodePattern.MatchString(code)
}

// Mutation changes a working copy of the state. Returning an error discards the copy.
type Mutation func(s *models.State) error

// Chain runs mutations in order and stops at the first error.
func Chain(mutations ...Mutation) Mutation {
	return func(s *models.State) error {
		for _, m := range mutations {
			if err := m(s); err != nil {
				return err
			}
		}
		return nil
	}
}

func SetUser(user models.User) Mutation {
	return func(s *models.State) error {
		if user.ID == "" {
			return ErrEmptyValue
		}
		u := user
		s.User = &u
		return nil
	}
}

func SetBalance(balance int) Mutation {
	return func(s *models.State) error {
		if balance < 0 {
			return ErrNegativeBalance
		}
		s.Balance = balance
		return nil
	}
}

func AddBalance(amount int) Mutation {
	return func(s *models.State) error {
		if amount <= 0 {
			return ErrInvalidAmount
		}
		s.Balance += amount
		return nil
	}
}

// CompleteTask marks the task done and drops it from both transient sets.
func CompleteTask(taskID string, at time.Time) Mutation {
	return func(s *models.State) error {
		i, ok := s.FindTask(taskID)
		if !ok {
			return ErrTaskNotFound
		}
		if s.Tasks[i].Completed {
			return ErrTaskCompleted
		}
		completedAt := at.UTC()
		s.Tasks[i].Completed = true
		s.Tasks[i].CompletedAt = &completedAt
		s.RemoveCompleting(taskID)
		s.RemoveClaimable(taskID)
		return nil
	}
}

func SetCompletingTask(taskID string, completing bool) Mutation {
	return func(s *models.State) error {
		if !completing {
			s.RemoveCompleting(taskID)
			return nil
		}
		i, ok := s.FindTask(taskID)
		if !ok {
			return ErrTaskNotFound
		}
		if s.Tasks[i].Completed {
			return ErrTaskCompleted
		}
		if s.IsCompleting(taskID) || s.IsClaimable(taskID) {
			return ErrTaskInFlight
		}
		s.AddCompleting(taskID)
		return nil
	}
}

// SetClaimableReward moves the task from completing to claimable. A task that
// left the completing set, e.g. after a cancel, is refused.
func SetClaimableReward(taskID string) Mutation {
	return func(s *models.State) error {
		i, ok := s.FindTask(taskID)
		if !ok {
			return ErrTaskNotFound
		}
		if s.Tasks[i].Completed {
			return ErrTaskCompleted
		}
		if !s.IsCompleting(taskID) {
			return ErrNotCompleting
		}
		s.RemoveCompleting(taskID)
		s.AddClaimable(taskID)
		return nil
	}
}

func ClearClaimableReward(taskID string) Mutation {
	return func(s *models.State) error {
		s.RemoveClaimable(taskID)
		return nil
	}
}

// SetReferralCode stores the installation's own code. Once set it never changes.
func SetReferralCode(code string) Mutation {
	return func(s *models.State) error {
		if !ValidReferralCode(code) {
			return ErrInvalidReferralCode
		}
		if s.ReferralCode != "" && s.ReferralCode != code {
			return ErrReferralCodeExists
		}
		s.ReferralCode = code
		return nil
	}
}

// SetSubmittedReferralCode records the referrer's code, at most once.
func SetSubmittedReferralCode(code string) Mutation {
	return func(s *models.State) error {
		code = strings.TrimSpace(code)
		if code == "" {
			return ErrEmptyValue
		}
		if s.SubmittedReferralCode != "" {
			return ErrReferralSubmitted
		}
		s.SubmittedReferralCode = code
		return nil
	}
}

func UpdateFullName(name string) Mutation {
	return func(s *models.State) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return ErrEmptyValue
		}
		if s.User == nil {
			return ErrNoUser
		}
		s.User.FullName = name
		return nil
	}
}

// InitializeTasks seeds the catalog only when the task list is empty.
func InitializeTasks() Mutation {
	return func(s *models.State) error {
		if len(s.Tasks) == 0 {
			s.Tasks = models.DefaultTasks()
		}
		return nil
	}
}

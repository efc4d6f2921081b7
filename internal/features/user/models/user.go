package models

import "time"

// User is the remote profile record, upserted by Telegram id.
// @Description Telegram user profile
type User struct {
	ID           int64     `json:"id" example:"123456789"`
	Username     string    `json:"username,omitempty" example:"johndoe"`
	FirstName    string    `json:"first_name,omitempty" example:"John"`
	LastName     string    `json:"last_name,omitempty" example:"Doe"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	LanguageCode string    `json:"language_code,omitempty" example:"en"`
	IsPremium    bool      `json:"is_premium"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Level is the profile rank derived from the balance.
type Level struct {
	Number int    `json:"level" example:"2"`
	Name   string `json:"name" example:"intermediate" enums:"beginner,intermediate,advanced"`
	// TranslationKey is the i18n key of the level name
	TranslationKey string `json:"translation_key" example:"levelIntermediate"`
}

// ProfileResponse is the profile page state.
// @Description Current user profile
type ProfileResponse struct {
	ID          string `json:"id" example:"123456789"`
	Username    string `json:"username,omitempty" example:"johndoe"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	DisplayName string `json:"display_name" example:"John Doe"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Balance     int    `json:"balance" example:"120"`
	Level       Level  `json:"level"`
	// CompletedTasks counts tasks whose reward was claimed
	CompletedTasks int `json:"completed_tasks"`
	// AuthError is set when the profile sync failed and the app runs in degraded mode
	AuthError string `json:"auth_error,omitempty"`
}

type BalanceResponse struct {
	Balance int `json:"balance" example:"120"`
}

type UpdateNameRequest struct {
	FullName string `json:"full_name" binding:"required" example:"John Doe"`
}

package models

import (
	"time"

	store "lyra-coin-backend/internal/features/appstore/models"
)

// TaskView is a task as rendered by the task list.
type TaskView struct {
	ID               string          `json:"id"`
	Platform         string          `json:"platform"`
	Description      string          `json:"description"`
	Reward           int             `json:"reward"`
	State            store.TaskState `json:"state"`
	RemainingSeconds int             `json:"remaining_seconds,omitempty"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
	Link             string          `json:"link"`
	Color            string          `json:"color"`
	Icon             string          `json:"icon"`
	TranslationKey   string          `json:"translation_key"`
}

// PlatformGroup groups tasks of one platform in display order.
type PlatformGroup struct {
	Platform string     `json:"platform"`
	Link     string     `json:"link"`
	Color    string     `json:"color"`
	Icon     string     `json:"icon"`
	Tasks    []TaskView `json:"tasks"`
}

type ListResponse struct {
	Balance          int             `json:"balance"`
	CompletedRewards int             `json:"completed_rewards"`
	Platforms        []PlatformGroup `json:"platforms"`
}

type StartResponse struct {
	Task TaskView `json:"task"`
	// Link is opened by the client in a new browsing context
	Link string `json:"link"`
}

type ClaimResponse struct {
	Task    TaskView `json:"task"`
	Reward  int      `json:"reward"`
	Balance int      `json:"balance"`
}

// NewTaskView builds the view of task t given its derived state.
func NewTaskView(t store.Task, state store.TaskState, remaining int) TaskView {
	info := t.Platform.Info()
	return TaskView{
		ID:               t.ID,
		Platform:         info.Name,
		Description:      t.Description,
		Reward:           t.Reward,
		State:            state,
		RemainingSeconds: remaining,
		CompletedAt:      t.CompletedAt,
		Link:             info.Link,
		Color:            info.Color,
		Icon:             info.Icon,
		TranslationKey:   info.TranslationKey,
	}
}

package models

import (
	"slices"
	"time"
)

// DefaultBalance is the starting balance of a fresh installation, in minutes.
const DefaultBalance = 120

type User struct {
	ID        string `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	FullName  string `json:"fullName,omitempty"`
}

type Task struct {
	ID          string     `json:"id"`
	Platform    Platform   `json:"platform"`
	Description string     `json:"description"`
	Reward      int        `json:"reward"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// State is everything the app keeps for one installation.
type State struct {
	User                  *User    `json:"user"`
	Balance               int      `json:"balance"`
	Tasks                 []Task   `json:"tasks"`
	ReferralCode          string   `json:"referralCode"`
	SubmittedReferralCode string   `json:"submittedReferralCode"`
	CompletingTasks       []string `json:"completingTasks"`
	ClaimableRewards      []string `json:"claimableRewards"`
}

// Envelope is the persisted form: {"state": {...}, "version": 0}.
type Envelope struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

// SnapshotVersion is written into every persisted envelope.
const SnapshotVersion = 0

func DefaultState() State {
	return State{
		Balance:          DefaultBalance,
		Tasks:            []Task{},
		CompletingTasks:  []string{},
		ClaimableRewards: []string{},
	}
}

// Clone returns a deep copy; callers may mutate the result freely.
func (s State) Clone() State {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	out.Tasks = make([]Task, len(s.Tasks))
	for i, t := range s.Tasks {
		if t.CompletedAt != nil {
			at := *t.CompletedAt
			t.CompletedAt = &at
		}
		out.Tasks[i] = t
	}
	out.CompletingTasks = append([]string{}, s.CompletingTasks...)
	out.ClaimableRewards = append([]string{}, s.ClaimableRewards...)
	return out
}

// Normalize replaces nil slices so the persisted JSON always carries arrays.
func (s *State) Normalize() {
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	if s.CompletingTasks == nil {
		s.CompletingTasks = []string{}
	}
	if s.ClaimableRewards == nil {
		s.ClaimableRewards = []string{}
	}
}

func (s *State) FindTask(id string) (int, bool) {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *State) IsCompleting(id string) bool {
	return slices.Contains(s.CompletingTasks, id)
}

func (s *State) IsClaimable(id string) bool {
	return slices.Contains(s.ClaimableRewards, id)
}

// TaskState is the lifecycle position of a single task.
type TaskState string

const (
	TaskIdle       TaskState = "idle"
	TaskCompleting TaskState = "completing"
	TaskClaimable  TaskState = "claimable"
	TaskCompleted  TaskState = "completed"
)

// StateOf derives the lifecycle state of task id. Completed wins over any
// transient membership.
func (s *State) StateOf(id string) TaskState {
	if i, ok := s.FindTask(id); ok && s.Tasks[i].Completed {
		return TaskCompleted
	}
	switch {
	case s.IsClaimable(id):
		return TaskClaimable
	case s.IsCompleting(id):
		return TaskCompleting
	default:
		return TaskIdle
	}
}

// CompletedRewards sums the rewards of every completed task.
func (s *State) CompletedRewards() int {
	total := 0
	for _, t := range s.Tasks {
		if t.Completed {
			total += t.Reward
		}
	}
	return total
}

func removeID(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(v string) bool { return v == id })
}

func addID(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

// RemoveCompleting drops id from the completing set.
func (s *State) RemoveCompleting(id string) {
	s.CompletingTasks = removeID(s.CompletingTasks, id)
}

func (s *State) AddCompleting(id string) {
	s.CompletingTasks = addID(s.CompletingTasks, id)
}

func (s *State) RemoveClaimable(id string) {
	s.ClaimableRewards = removeID(s.ClaimableRewards, id)
}

func (s *State) AddClaimable(id string) {
	s.ClaimableRewards = addID(s.ClaimableRewards, id)
}

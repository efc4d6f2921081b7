package models

// ReferralView is what the referral page renders.
type ReferralView struct {
	Code string `json:"referral_code" example:"ref_A1B2C3"`
	// Link is the bot deep link carrying the code
	Link          string `json:"referral_link" example:"https://t.me/LyraCoinBot?start=ref_A1B2C3"`
	SubmittedCode string `json:"submitted_referral_code,omitempty"`
	// Locked is true once a referrer code was submitted
	Locked bool `json:"locked"`
}

type SubmitRequest struct {
	Code string `json:"code" binding:"required" example:"ref_XYZ123"`
}

// ShareLinks are the social share URLs for the app's public origin.
type ShareLinks struct {
	Facebook string `json:"facebook"`
	Twitter  string `json:"twitter"`
	Telegram string `json:"telegram"`
}

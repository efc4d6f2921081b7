package models

import "time"

// Connection is the wallet connection observed by the client's wallet-connect
// library and reported to the backend.
type Connection struct {
	UserID      int64     `json:"user_id"`
	Address     string    `json:"address"`
	RawAddress  string    `json:"raw_address"`
	Network     string    `json:"network"`
	ConnectedAt time.Time `json:"connected_at"`
}

type ConnectRequest struct {
	Address string `json:"address" binding:"required" example:"0:83dfd552e63729b472fcbcc8c45ebcc6691702558b68ec7527e1ba403a0f31a8"`
	// Network is the TON Connect chain id: -239 mainnet, -3 testnet
	Network string `json:"network" example:"-239"`
}

// Status is what the landing page needs to decide between connect and home.
type Status struct {
	Connected   bool       `json:"connected"`
	Address     string     `json:"address,omitempty"`
	RawAddress  string     `json:"raw_address,omitempty"`
	Network     string     `json:"network,omitempty"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
}

type BalanceResponse struct {
	Address string `json:"address"`
	Nano    string `json:"nano" example:"1500000000"`
	TON     string `json:"ton" example:"1.5"`
}

// Manifest is the TON Connect app manifest.
type Manifest struct {
	URL     string `json:"url"`
	Name    string `json:"name"`
	IconURL string `json:"iconUrl"`
}

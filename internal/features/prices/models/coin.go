package models

import "time"

// Coin is one market record as returned by the market data endpoint.
type Coin struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	Symbol                   string  `json:"symbol"`
	CurrentPrice             float64 `json:"current_price"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	MarketCap                float64 `json:"market_cap"`
	Image                    string  `json:"image"`
}

// CoinView is a coin with display strings.
type CoinView struct {
	Coin
	Price       string `json:"price" example:"$45,210.7"`
	MarketCapFm string `json:"market_cap_formatted" example:"$2.50B"`
	Change24h   string `json:"change_24h" example:"1.25%"`
	Trend       string `json:"trend" enums:"up,down"`
}

// View is the state of the price page.
type View struct {
	Coins       []CoinView `json:"coins"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	// Error is set when the last refresh failed
	Error         string `json:"error,omitempty"`
	ShowingCached bool   `json:"showing_cached"`
}

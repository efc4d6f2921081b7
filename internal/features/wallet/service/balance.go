package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"
)

// TonAPI reads on-chain balances over the TonAPI HTTP API.
type TonAPI struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewTonAPI(baseURL, apiToken string) *TonAPI {
	if baseURL == "" {
		baseURL = "https://tonapi.io"
	}
	return &TonAPI{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      apiToken,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

// BalanceNano returns the native TON balance of address in nanoTON.
func (t *TonAPI) BalanceNano(ctx context.Context, address string) (*big.Int, error) {
	var out struct {
		Balance json.Number `json:"balance"`
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/v2/accounts/"+address, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tonapi http %d", resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}

	n, ok := new(big.Int).SetString(out.Balance.String(), 10)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("invalid balance format %q", out.Balance)
	}
	return n, nil
}

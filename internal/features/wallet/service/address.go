package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xssnick/tonutils-go/address"
)

var (
	ErrInvalidAddress = errors.New("invalid TON address")
	ErrInvalidNetwork = errors.New("invalid TON network")
)

const (
	NetworkMainnet = "-239"
	NetworkTestnet = "-3"
)

// ParseAddress accepts user-friendly base64 and raw wc:hex forms.
func ParseAddress(s string) (*address.Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrInvalidAddress
	}

	if strings.Contains(s, ":") {
		addr, err := address.ParseRawAddr(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
		}
		return addr, nil
	}

	addr, err := address.ParseAddr(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return addr, nil
}

// NormalizeNetwork maps the accepted network spellings to TON Connect chain ids.
// An empty value means mainnet.
func NormalizeNetwork(network string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(network)) {
	case "", NetworkMainnet, "mainnet":
		return NetworkMainnet, nil
	case NetworkTestnet, "testnet":
		return NetworkTestnet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidNetwork, network)
	}
}

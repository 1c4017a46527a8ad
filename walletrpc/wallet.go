// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletrpc

import (
	"context"
	"fmt"
	"strings"
)

// Priority implies the fee the daemon attaches to a transfer.
type Priority uint

const (
	PriorityUnimportant Priority = 1
	PriorityNormal      Priority = 2
	PriorityElevated    Priority = 3
	PriorityHighest     Priority = 4
)

// ParsePriority maps the textual priority names to their levels.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unimportant":
		return PriorityUnimportant, nil
	case "normal":
		return PriorityNormal, nil
	case "elevated":
		return PriorityElevated, nil
	case "priority":
		return PriorityHighest, nil
	}
	return 0, fmt.Errorf("unknown priority %q (must be unimportant, normal, elevated or priority)", s)
}

// Destination pairs an address with an amount of atomic units.
type Destination struct {
	Amount  uint64 `json:"amount"`
	Address string `json:"address"`
}

// TransferRequest drives the daemon's transfer methods.
type TransferRequest struct {
	Destinations []Destination `json:"destinations"`
	AccountIndex uint32        `json:"account_index"`
	Priority     Priority      `json:"priority,omitempty"`
	PaymentID    string        `json:"payment_id,omitempty"`
	UnlockTime   uint64        `json:"unlock_time"`
	DoNotRelay   bool          `json:"do_not_relay,omitempty"`
	GetTxHex     bool          `json:"get_tx_hex,omitempty"`
	GetTxKeys    bool          `json:"get_tx_keys,omitempty"`
}

// Transfer is a single transaction produced by the transfer method.
type Transfer struct {
	TxHash string `json:"tx_hash"`
	TxKey  string `json:"tx_key"`
	Amount uint64 `json:"amount"`
	Fee    uint64 `json:"fee"`
	TxBlob string `json:"tx_blob,omitempty"`
}

// Transfer sends a single transaction covering all destinations.
func (c *Client) Transfer(ctx context.Context, req TransferRequest) (*Transfer, error) {
	var res Transfer
	if err := c.Call(ctx, "transfer", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// TransferSplit is the result of transfer_split: one entry per transaction.
type TransferSplit struct {
	TxHashes []string `json:"tx_hash_list"`
	TxKeys   []string `json:"tx_key_list"`
	Amounts  []uint64 `json:"amount_list"`
	Fees     []uint64 `json:"fee_list"`
	TxBlobs  []string `json:"tx_blob_list,omitempty"`
}

// TransferSplit sends a payment the daemon may split over several
// transactions.
func (c *Client) TransferSplit(ctx context.Context, req TransferRequest) (*TransferSplit, error) {
	var res TransferSplit
	if err := c.Call(ctx, "transfer_split", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Balance is an account's total and unlocked balance in atomic units.
type Balance struct {
	Balance         uint64 `json:"balance"`
	UnlockedBalance uint64 `json:"unlocked_balance"`
}

// GetBalance returns the balance of the given account.
func (c *Client) GetBalance(ctx context.Context, account uint32) (*Balance, error) {
	params := struct {
		AccountIndex uint32 `json:"account_index"`
	}{account}
	var res Balance
	if err := c.Call(ctx, "get_balance", params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetHeight returns the wallet's current sync height.
func (c *Client) GetHeight(ctx context.Context) (uint64, error) {
	var res struct {
		Height uint64 `json:"height"`
	}
	if err := c.Call(ctx, "get_height", nil, &res); err != nil {
		return 0, err
	}
	return res.Height, nil
}

// SubaddressInfo describes one address of an account.
type SubaddressInfo struct {
	Address      string `json:"address"`
	AddressIndex uint32 `json:"address_index"`
	Label        string `json:"label"`
	Used         bool   `json:"used"`
}

// GetAddress returns the account's primary address and all of its known
// subaddresses.
func (c *Client) GetAddress(ctx context.Context, account uint32) (string, []SubaddressInfo, error) {
	params := struct {
		AccountIndex uint32 `json:"account_index"`
	}{account}
	var res struct {
		Address   string           `json:"address"`
		Addresses []SubaddressInfo `json:"addresses"`
	}
	if err := c.Call(ctx, "get_address", params, &res); err != nil {
		return "", nil, err
	}
	return res.Address, res.Addresses, nil
}

// CreateAddress asks the daemon to mint the next subaddress of an account.
func (c *Client) CreateAddress(ctx context.Context, account uint32, label string) (string, uint32, error) {
	params := struct {
		AccountIndex uint32 `json:"account_index"`
		Label        string `json:"label,omitempty"`
	}{account, label}
	var res struct {
		Address      string `json:"address"`
		AddressIndex uint32 `json:"address_index"`
	}
	if err := c.Call(ctx, "create_address", params, &res); err != nil {
		return "", 0, err
	}
	return res.Address, res.AddressIndex, nil
}

// Key types understood by QueryKey.
const (
	KeyView     = "view_key"
	KeySpend    = "spend_key"
	KeyMnemonic = "mnemonic"
)

// QueryKey exports key material from the daemon.
func (c *Client) QueryKey(ctx context.Context, keyType string) (string, error) {
	params := struct {
		KeyType string `json:"key_type"`
	}{keyType}
	var res struct {
		Key string `json:"key"`
	}
	if err := c.Call(ctx, "query_key", params, &res); err != nil {
		return "", err
	}
	return res.Key, nil
}

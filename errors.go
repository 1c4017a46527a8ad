// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package uplexa

import "errors"

// Sentinel errors. ErrChecksum is kept separate from the validation errors so
// callers can prompt for re-entry of a mistyped phrase instead of rejecting it
// outright.
var (
	ErrInvalidSeed      = errors.New("invalid seed hex")
	ErrInvalidPhrase    = errors.New("invalid mnemonic phrase")
	ErrUnknownWord      = errors.New("word not in wordlist")
	ErrChecksum         = errors.New("mnemonic checksum mismatch")
	ErrInvalidKey       = errors.New("invalid key")
	ErrInvalidNetwork   = errors.New("invalid network")
	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidPaymentID = errors.New("invalid payment id")
)

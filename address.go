// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package uplexa

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// Network selects the address prefix bytes.
type Network string

const (
	Mainnet  Network = "mainnet"
	Testnet  Network = "testnet"
	Stagenet Network = "stagenet"
)

// ParseNetwork validates a network name.
func ParseNetwork(s string) (Network, error) {
	switch n := Network(strings.ToLower(strings.TrimSpace(s))); n {
	case Mainnet, Testnet, Stagenet:
		return n, nil
	}
	return "", fmt.Errorf("%w: %q (must be mainnet, testnet or stagenet)", ErrInvalidNetwork, s)
}

func (n Network) masterPrefix() (byte, error) {
	switch n {
	case Mainnet:
		return 18, nil
	case Testnet:
		return 53, nil
	case Stagenet:
		return 24, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNetwork, string(n))
}

// Subaddress prefixes are disjoint from the master ones so the two address
// classes are distinguishable at a glance.
func (n Network) subaddressPrefix() (byte, error) {
	switch n {
	case Mainnet:
		return 42, nil
	case Testnet:
		return 63, nil
	case Stagenet:
		return 36, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNetwork, string(n))
}

// Address is a parsed account address: the prefix byte, the public spend and
// view points and the network they imply, kept alongside the base58 form.
type Address struct {
	raw    string
	prefix byte
	spend  [32]byte
	view   [32]byte
	net    Network
	sub    bool
}

// ParseAddress decodes a base58 address and verifies its length, Keccak-256
// checksum and prefix byte.
func ParseAddress(s string) (Address, error) {
	data, err := decodeBase58(s)
	if err != nil {
		return Address{}, err
	}
	if len(data) != 69 { // prefix + spend + view + checksum
		return Address{}, fmt.Errorf("%w: decoded length %d", ErrInvalidAddress, len(data))
	}
	body, check := data[:65], data[65:]
	if !bytes.Equal(keccak256(body)[:4], check) {
		return Address{}, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}
	a := Address{raw: s, prefix: body[0]}
	copy(a.spend[:], body[1:33])
	copy(a.view[:], body[33:65])
	switch body[0] {
	case 18:
		a.net = Mainnet
	case 53:
		a.net = Testnet
	case 24:
		a.net = Stagenet
	case 42:
		a.net, a.sub = Mainnet, true
	case 63:
		a.net, a.sub = Testnet, true
	case 36:
		a.net, a.sub = Stagenet, true
	default:
		return Address{}, fmt.Errorf("%w: unknown prefix byte %d", ErrInvalidAddress, body[0])
	}
	return a, nil
}

func buildAddress(prefix byte, spend, view []byte, net Network, sub bool) Address {
	body := make([]byte, 0, 69)
	body = append(body, prefix)
	body = append(body, spend...)
	body = append(body, view...)
	body = append(body, keccak256(body)[:4]...)
	a := Address{raw: encodeBase58(body), prefix: prefix, net: net, sub: sub}
	copy(a.spend[:], spend)
	copy(a.view[:], view)
	return a
}

// String returns the base58 form.
func (a Address) String() string { return a.raw }

// Network returns the network the prefix byte implies.
func (a Address) Network() Network { return a.net }

// IsSubaddress reports whether the address carries a subaddress prefix.
func (a Address) IsSubaddress() bool { return a.sub }

// SpendKey returns the embedded public spend point as hex.
func (a Address) SpendKey() string { return hex.EncodeToString(a.spend[:]) }

// ViewKey returns the embedded public view point as hex.
func (a Address) ViewKey() string { return hex.EncodeToString(a.view[:]) }

// Equal compares the base58 forms.
func (a Address) Equal(b Address) bool { return a.raw == b.raw }

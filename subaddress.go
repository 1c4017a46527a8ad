// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package uplexa

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"filippo.io/edwards25519"
)

// Subaddress derivation domain separator.
const subaddrDomain = "SubAddr\x00"

// DeriveSubaddress computes the deterministic subaddress for the (major,
// minor) account and address indices from the master secret view key and
// public spend key. (0,0) is the master address itself; no curve math runs
// for it. Subaddresses carry no private key material of their own — spending
// still routes through the master spend key.
//
//	m = Keccak256("SubAddr\0" || v || LE32(major) || LE32(minor)), reduced
//	D = spendPub + m*B
//	C = v*D
func DeriveSubaddress(secretViewKey, publicSpendKey string, major, minor uint32, net Network) (Address, error) {
	view, err := hex.DecodeString(secretViewKey)
	if err != nil || len(view) != 32 {
		return Address{}, fmt.Errorf("%w: secret view key must be 64 hex characters", ErrInvalidKey)
	}
	spendPub, err := hex.DecodeString(publicSpendKey)
	if err != nil || len(spendPub) != 32 {
		return Address{}, fmt.Errorf("%w: public spend key must be 64 hex characters", ErrInvalidKey)
	}
	viewScalar, err := edwards25519.NewScalar().SetCanonicalBytes(view)
	if err != nil {
		return Address{}, fmt.Errorf("%w: view key is not a reduced scalar", ErrInvalidKey)
	}

	if major == 0 && minor == 0 {
		prefix, err := net.masterPrefix()
		if err != nil {
			return Address{}, err
		}
		return buildAddress(prefix, spendPub, scalarMultBase(viewScalar), net, false), nil
	}

	spendPoint, err := decodePoint(spendPub)
	if err != nil {
		return Address{}, err
	}

	var idx [8]byte
	binary.LittleEndian.PutUint32(idx[:4], major)
	binary.LittleEndian.PutUint32(idx[4:], minor)
	m := reduceScalar(keccak256([]byte(subaddrDomain), view, idx[:]))

	D := edwards25519.NewIdentityPoint().Add(spendPoint, edwards25519.NewIdentityPoint().ScalarBaseMult(m))
	C := edwards25519.NewIdentityPoint().ScalarMult(viewScalar, D)

	prefix, err := net.subaddressPrefix()
	if err != nil {
		return Address{}, err
	}
	return buildAddress(prefix, D.Bytes(), C.Bytes(), net, true), nil
}

// Subaddress derives the subaddress for (major, minor) from this seed's keys.
func (s *Seed) Subaddress(major, minor uint32, net Network) (Address, error) {
	return DeriveSubaddress(s.SecretViewKey(), s.PublicSpendKey(), major, minor, net)
}

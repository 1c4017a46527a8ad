// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package uplexa

import (
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"
)

// keccak256 returns the legacy Keccak-256 digest of the concatenated inputs.
// All hashing in the address and key derivation chain goes through here.
func keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// reduceScalar interprets b (at most 32 bytes) as a little-endian integer and
// reduces it modulo the order of the prime-order subgroup. Every raw hash
// output must pass through here before it is used as a private key or
// derivation scalar; skipping the reduction would produce non-canonical
// scalars.
func reduceScalar(b []byte) *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:], b)
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		// SetUniformBytes only fails on a wrong input length.
		panic(err)
	}
	return s
}

// scalarMultBase returns s*B encoded as 32 bytes.
func scalarMultBase(s *edwards25519.Scalar) []byte {
	return edwards25519.NewIdentityPoint().ScalarBaseMult(s).Bytes()
}

// decodePoint decodes a canonical 32-byte point encoding.
func decodePoint(b []byte) (*edwards25519.Point, error) {
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: not a curve point", ErrInvalidKey)
	}
	return p, nil
}

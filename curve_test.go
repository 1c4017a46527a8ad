// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package uplexa

import (
	"encoding/hex"
	"testing"

	"filippo.io/edwards25519"
	"github.com/matryer/is"
)

// TestKeccak256_EmptyInput checks the well-known Keccak-256 digest of the
// empty string, which pins down that we use the legacy padding and not SHA3.
func TestKeccak256_EmptyInput(t *testing.T) {
	is := is.New(t)

	digest := keccak256()
	is.Equal(hex.EncodeToString(digest), "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
}

// TestKeccak256_Concatenation verifies that hashing several chunks equals
// hashing their concatenation.
func TestKeccak256_Concatenation(t *testing.T) {
	is := is.New(t)

	a := []byte("SubAddr\x00")
	b := []byte{1, 2, 3, 4}
	joined := append(append([]byte{}, a...), b...)
	is.Equal(hex.EncodeToString(keccak256(a, b)), hex.EncodeToString(keccak256(joined)))
}

// TestScalarMultBase_One checks that scalar one yields the canonical base
// point encoding.
func TestScalarMultBase_One(t *testing.T) {
	is := is.New(t)

	one := make([]byte, 32)
	one[0] = 1
	s, err := edwards25519.NewScalar().SetCanonicalBytes(one)
	is.NoErr(err)
	is.Equal(hex.EncodeToString(scalarMultBase(s)), "5866666666666666666666666666666666666666666666666666666666666666")
}

// TestReduceScalar_SmallValue verifies that a value already below the group
// order reduces to itself.
func TestReduceScalar_SmallValue(t *testing.T) {
	is := is.New(t)

	small := make([]byte, 32)
	small[0] = 42
	want, err := edwards25519.NewScalar().SetCanonicalBytes(small)
	is.NoErr(err)
	is.Equal(reduceScalar(small).Bytes(), want.Bytes())
}

// TestDecodePoint_Invalid checks that a non-point encoding is rejected.
func TestDecodePoint_Invalid(t *testing.T) {
	is := is.New(t)

	bad := make([]byte, 32)
	for i := range bad {
		bad[i] = 0xff
	}
	_, err := decodePoint(bad)
	is.True(err != nil)
}

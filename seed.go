// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package uplexa derives account keys and addresses for a CryptoNote-style
// chain. A Seed couples raw entropy with its mnemonic phrase; from it the
// spend and view keypairs, the master address and any number of deterministic
// subaddresses are derived. Amounts and payment identifiers crossing the
// wallet-RPC boundary are handled by the AtomicAmount helpers and the
// PaymentID type.
//
// The package performs no network I/O and never talks to a daemon; see the
// walletrpc subpackage for that.
package uplexa

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// seedForm distinguishes the two seed classes. It is decided once, at
// construction; derivation logic branches on the tag, never on a re-measured
// hex length.
type seedForm int

const (
	standardSeed seedForm = iota // 32-byte entropy, 24/25-word phrase
	legacySeed                   // 16-byte entropy, 12/13-word phrase
)

// Seed is one entropy value, its mnemonic phrase and the key material derived
// from both. Every field is populated at construction and never changes, so a
// Seed can be shared freely between goroutines.
type Seed struct {
	form     seedForm
	hex      string
	phrase   string
	wordlist *Wordlist

	secretSpend []byte
	secretView  []byte
	publicSpend []byte
	publicView  []byte
}

// NewSeed generates a fresh seed from 32 bytes of system randomness.
func NewSeed(wordlist *Wordlist) (*Seed, error) {
	var entropy [32]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		return nil, fmt.Errorf("could not gather entropy: %w", err)
	}
	return NewSeedFromHex(hex.EncodeToString(entropy[:]), wordlist)
}

// NewSeedFromHex builds a Seed from lowercase hex entropy. The length must be
// a multiple of 8 hex characters; 32 characters select the legacy 12/13-word
// class, 64 the standard one.
func NewSeedFromHex(hexSeed string, wordlist *Wordlist) (*Seed, error) {
	if wordlist == nil {
		wordlist = English
	}
	hexSeed = strings.ToLower(strings.TrimSpace(hexSeed))
	if len(hexSeed) == 0 || len(hexSeed)%8 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 8", ErrInvalidSeed, len(hexSeed))
	}
	phrase, err := wordlist.Encode(hexSeed)
	if err != nil {
		return nil, err
	}
	return newSeed(hexSeed, phrase, wordlist)
}

// NewSeedFromPhrase builds a Seed from a mnemonic phrase of 12, 13, 24 or 25
// words. Exactly 13 and 25 words mean "checksum present": the last word must
// match the computed checksum or construction fails with ErrChecksum.
func NewSeedFromPhrase(phrase string, wordlist *Wordlist) (*Seed, error) {
	if wordlist == nil {
		wordlist = English
	}
	words := strings.Fields(phrase)
	switch len(words) {
	case 12, 24:
	case 13, 25:
		check, err := wordlist.Checksum(words)
		if err != nil {
			return nil, err
		}
		if words[len(words)-1] != check {
			return nil, fmt.Errorf("%w: last word %q does not match", ErrChecksum, words[len(words)-1])
		}
	default:
		return nil, fmt.Errorf("%w: unsupported word count %d", ErrInvalidPhrase, len(words))
	}
	hexSeed, err := wordlist.Decode(strings.Join(words, " "))
	if err != nil {
		return nil, err
	}
	return newSeed(hexSeed, strings.Join(words, " "), wordlist)
}

func newSeed(hexSeed, phrase string, wordlist *Wordlist) (*Seed, error) {
	entropy, err := hex.DecodeString(hexSeed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	form := standardSeed
	if len(hexSeed) == 32 {
		form = legacySeed
	}

	// Legacy entropy is too short to be a scalar and is stretched through
	// Keccak-256 first; standard entropy is reduced directly.
	spendRaw := entropy
	viewRaw := entropy // overwritten below for the standard form
	if form == legacySeed {
		digest := keccak256(entropy)
		spendRaw = digest
		viewRaw = digest
	}
	spendScalar := reduceScalar(spendRaw)
	if form == standardSeed {
		viewRaw = spendScalar.Bytes()
	}
	viewScalar := reduceScalar(keccak256(viewRaw))

	return &Seed{
		form:        form,
		hex:         hexSeed,
		phrase:      phrase,
		wordlist:    wordlist,
		secretSpend: spendScalar.Bytes(),
		secretView:  viewScalar.Bytes(),
		publicSpend: scalarMultBase(spendScalar),
		publicView:  scalarMultBase(viewScalar),
	}, nil
}

// Hex returns the seed's entropy as lowercase hex.
func (s *Seed) Hex() string { return s.hex }

// Phrase returns the mnemonic phrase.
func (s *Seed) Phrase() string { return s.phrase }

// Wordlist returns the wordlist the phrase is written in.
func (s *Seed) Wordlist() *Wordlist { return s.wordlist }

// IsLegacy reports whether this is a 16-byte (12/13-word) seed.
func (s *Seed) IsLegacy() bool { return s.form == legacySeed }

// SecretSpendKey returns the reduced secret spend scalar as hex.
func (s *Seed) SecretSpendKey() string { return hex.EncodeToString(s.secretSpend) }

// SecretViewKey returns the reduced secret view scalar as hex. The view key
// is always derived from the spend key by hashing, never independently.
func (s *Seed) SecretViewKey() string { return hex.EncodeToString(s.secretView) }

// PublicSpendKey returns the encoded public spend point as hex.
func (s *Seed) PublicSpendKey() string { return hex.EncodeToString(s.publicSpend) }

// PublicViewKey returns the encoded public view point as hex.
func (s *Seed) PublicViewKey() string { return hex.EncodeToString(s.publicView) }

// Address returns the master address for the given network.
func (s *Seed) Address(net Network) (Address, error) {
	prefix, err := net.masterPrefix()
	if err != nil {
		return Address{}, err
	}
	return buildAddress(prefix, s.publicSpend, s.publicView, net, false), nil
}

// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package uplexa

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

// TestWordlist_EncodeRoundtrip encodes random entropy of both sizes and
// decodes the phrase back.
func TestWordlist_EncodeRoundtrip(t *testing.T) {
	for _, size := range []int{16, 32} {
		t.Run(map[int]string{16: "legacy", 32: "standard"}[size], func(t *testing.T) {
			is := is.New(t)

			entropy := make([]byte, size)
			_, err := rand.Read(entropy)
			is.NoErr(err)
			hexSeed := hex.EncodeToString(entropy)

			phrase, err := English.Encode(hexSeed)
			is.NoErr(err)
			is.Equal(len(strings.Fields(phrase)), size/16*12+1)

			decoded, err := English.Decode(phrase)
			is.NoErr(err)
			is.Equal(decoded, hexSeed)
		})
	}
}

// TestWordlist_EncodeRejectsOddSizes checks that entropy sizes other than 16
// or 32 bytes fail.
func TestWordlist_EncodeRejectsOddSizes(t *testing.T) {
	is := is.New(t)

	for _, size := range []int{0, 8, 24, 40} {
		_, err := English.Encode(strings.Repeat("00", size))
		is.True(errors.Is(err, ErrInvalidSeed))
	}
}

// TestWordlist_DecodeUnknownWord checks that a word outside the list is
// reported with ErrUnknownWord.
func TestWordlist_DecodeUnknownWord(t *testing.T) {
	is := is.New(t)

	phrase, err := English.Encode(strings.Repeat("ab", 32))
	is.NoErr(err)

	words := strings.Fields(phrase)
	words[3] = "notaword"
	_, err = English.Decode(strings.Join(words, " "))
	is.True(errors.Is(err, ErrUnknownWord))
}

// TestWordlist_DecodeWordCount checks that only 12, 13, 24 and 25 word
// phrases are accepted.
func TestWordlist_DecodeWordCount(t *testing.T) {
	is := is.New(t)

	_, err := English.Decode(strings.TrimSpace(strings.Repeat(English.words[0]+" ", 5)))
	is.True(errors.Is(err, ErrInvalidPhrase))

	_, err = English.Decode(strings.TrimSpace(strings.Repeat(English.words[0]+" ", 26)))
	is.True(errors.Is(err, ErrInvalidPhrase))
}

// TestWordlist_DecodeOutOfRange builds a word group whose value exceeds 32
// bits; with 2048 words the triple (2047, 2046, 2045) decodes to 2^33-1.
func TestWordlist_DecodeOutOfRange(t *testing.T) {
	is := is.New(t)

	triple := []string{English.words[2047], English.words[2046], English.words[2045]}
	words := append(append(append(append([]string{}, triple...), triple...), triple...), triple...)
	_, err := English.Decode(strings.Join(words, " "))
	is.True(errors.Is(err, ErrInvalidPhrase))
}

// TestWordlist_ChecksumStable verifies the checksum word ignores the checksum
// slot itself, so recomputing over a 25-word phrase reproduces word 25.
func TestWordlist_ChecksumStable(t *testing.T) {
	is := is.New(t)

	phrase, err := English.Encode(strings.Repeat("cd", 32))
	is.NoErr(err)

	words := strings.Fields(phrase)
	is.Equal(len(words), 25)

	check, err := English.Checksum(words)
	is.NoErr(err)
	is.Equal(check, words[24])
}

// TestWordlist_ChecksumTooShort checks that fewer than 12 words cannot carry
// a checksum.
func TestWordlist_ChecksumTooShort(t *testing.T) {
	is := is.New(t)

	_, err := English.Checksum([]string{"abandon", "abandon"})
	is.True(errors.Is(err, ErrInvalidPhrase))
}

// TestGetWordlist resolves wordlists by tag, by English name and with
// case and space variations.
func TestGetWordlist(t *testing.T) {
	is := is.New(t)

	cases := map[string]*Wordlist{
		"en":       English,
		"en-GB":    English,
		"english":  English,
		"es":       Spanish,
		"Spanish":  Spanish,
		"fr":       French,
		"it":       Italian,
		"cs":       Czech,
		"ja":       Japanese,
		"japanese": Japanese,
		"ko":       Korean,
		"zh":       ChineseSimplified,
		"zh-Hant":  ChineseTraditional,
	}
	// Every name Languages() advertises must resolve to its own list.
	for _, wl := range []*Wordlist{English, Spanish, French, Italian, Czech, Japanese, Korean, ChineseSimplified, ChineseTraditional} {
		cases[wl.name] = wl
	}
	for input, want := range cases {
		got, err := GetWordlist(input)
		is.NoErr(err)
		is.Equal(got, want)
	}

	_, err := GetWordlist("xx")
	is.True(err != nil)
}

// TestLanguages checks the language listing is sorted and complete.
func TestLanguages(t *testing.T) {
	is := is.New(t)

	names := Languages()
	is.Equal(len(names), 9)
	is.Equal(names[0], "Chinese Simplified")
	for i := 1; i < len(names); i++ {
		is.True(names[i-1] < names[i])
	}
}

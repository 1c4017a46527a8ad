// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package uplexa

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"math"
	"sort"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Wordlist maps raw entropy to mnemonic phrases and back using the classic
// three-words-per-block scheme: each 4-byte little-endian word of entropy is
// spread over three dictionary words, and the digit a word contributes depends
// on the previous word's index. A 13th/25th checksum word is derived from the
// unique prefixes of the preceding words.
type Wordlist struct {
	name      string
	words     []string
	prefixLen int
	index     map[string]int
}

func newWordlist(name string, words []string, prefixLen int) *Wordlist {
	index := make(map[string]int, len(words))
	for i, w := range words {
		index[w] = i
	}
	return &Wordlist{name: name, words: words, prefixLen: prefixLen, index: index}
}

// Supported wordlists. Prefix lengths follow the scripts: four latin letters
// disambiguate every word in these lists, three are enough for the syllabic
// lists and a single character for the ideographic ones.
var (
	English            = newWordlist("English", wordlists.English, 4)
	Spanish            = newWordlist("Spanish", wordlists.Spanish, 4)
	French             = newWordlist("French", wordlists.French, 4)
	Italian            = newWordlist("Italian", wordlists.Italian, 4)
	Czech              = newWordlist("Czech", wordlists.Czech, 4)
	Japanese           = newWordlist("Japanese", wordlists.Japanese, 3)
	Korean             = newWordlist("Korean", wordlists.Korean, 3)
	ChineseSimplified  = newWordlist("Chinese Simplified", wordlists.ChineseSimplified, 1)
	ChineseTraditional = newWordlist("Chinese Traditional", wordlists.ChineseTraditional, 1)
)

var wordlistTags = map[lang.Tag]*Wordlist{
	lang.Chinese:              ChineseSimplified,
	lang.SimplifiedChinese:    ChineseSimplified,
	lang.TraditionalChinese:   ChineseTraditional,
	lang.Czech:                Czech,
	lang.AmericanEnglish:      English,
	lang.BritishEnglish:       English,
	lang.English:              English,
	lang.French:               French,
	lang.Italian:              Italian,
	lang.Japanese:             Japanese,
	lang.Korean:               Korean,
	lang.Spanish:              Spanish,
	lang.EuropeanSpanish:      Spanish,
	lang.LatinAmericanSpanish: Spanish,
}

func sanitizeLang(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// GetWordlist resolves a wordlist from a language tag ("es") or an English
// language name ("spanish", "Chinese Simplified").
func GetWordlist(language string) (*Wordlist, error) {
	language = sanitizeLang(language)
	tag := lang.Make(language)
	en := display.English.Languages() // default language name matcher
	for t, wl := range wordlistTags {
		if sanitizeLang(en.Name(t)) == language || sanitizeLang(wl.name) == language {
			tag = t
			break
		}
	}
	if tag == lang.Und { // Unknown language
		return nil, fmt.Errorf("language %q is not supported", language)
	}
	if wl := wordlistTags[tag]; wl != nil {
		return wl, nil
	}
	base, _ := tag.Base()
	if wl := wordlistTags[lang.MustParse(base.String())]; wl != nil {
		return wl, nil
	}
	return nil, fmt.Errorf("language %q is not supported", language)
}

// Languages returns the names of the supported wordlist languages.
func Languages() []string {
	seen := make(map[string]bool)
	var out []string
	for _, wl := range wordlistTags {
		if !seen[wl.name] {
			seen[wl.name] = true
			out = append(out, wl.name)
		}
	}
	sort.Strings(out)
	return out
}

// Name returns the wordlist's language name.
func (w *Wordlist) Name() string { return w.name }

// Encode converts a hex entropy string into a mnemonic phrase with a trailing
// checksum word. The entropy must be 16 or 32 bytes (32 or 64 hex characters).
func (w *Wordlist) Encode(hexSeed string) (string, error) {
	data, err := hex.DecodeString(hexSeed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	if len(data) != 16 && len(data) != 32 {
		return "", fmt.Errorf("%w: entropy must be 16 or 32 bytes, got %d", ErrInvalidSeed, len(data))
	}
	n := uint64(len(w.words))
	words := make([]string, 0, len(data)/4*3+1)
	for i := 0; i < len(data); i += 4 {
		x := uint64(binary.LittleEndian.Uint32(data[i : i+4]))
		w1 := x % n
		w2 := (x/n + w1) % n
		w3 := (x/(n*n) + w2) % n
		words = append(words, w.words[w1], w.words[w2], w.words[w3])
	}
	check, err := w.Checksum(words)
	if err != nil {
		return "", err
	}
	words = append(words, check)
	return strings.Join(words, " "), nil
}

// Decode converts a phrase of 12, 13, 24 or 25 words back to its hex entropy.
// The checksum slot of a 13/25-word phrase is not decoded; validating it is
// the Seed's job.
func (w *Wordlist) Decode(phrase string) (string, error) {
	words := strings.Fields(phrase)
	switch len(words) {
	case 12, 13, 24, 25:
	default:
		return "", fmt.Errorf("%w: unsupported word count %d", ErrInvalidPhrase, len(words))
	}
	for _, word := range words {
		if _, ok := w.index[word]; !ok {
			return "", fmt.Errorf("%w: %q is not a %s word", ErrUnknownWord, word, w.name)
		}
	}
	n := uint64(len(w.words))
	triples := words[:len(words)/3*3]
	out := make([]byte, 0, len(triples)/3*4)
	for i := 0; i < len(triples); i += 3 {
		w1 := uint64(w.index[triples[i]])
		w2 := uint64(w.index[triples[i+1]])
		w3 := uint64(w.index[triples[i+2]])
		x := w1 + n*((n+w2-w1)%n) + n*n*((n+w3-w2)%n)
		if x > math.MaxUint32 {
			return "", fmt.Errorf("%w: word group %d decodes out of range", ErrInvalidPhrase, i/3)
		}
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(x))
		out = append(out, buf[:]...)
	}
	return hex.EncodeToString(out), nil
}

// Checksum computes the checksum word of a phrase. It is taken over the first
// 12 or 24 words only — the checksum slot itself never contributes — by
// hashing the unique prefix of each word and indexing back into those words.
func (w *Wordlist) Checksum(words []string) (string, error) {
	switch {
	case len(words) >= 24:
		words = words[:24]
	case len(words) >= 12:
		words = words[:12]
	default:
		return "", fmt.Errorf("%w: %d words is too short for a checksum", ErrInvalidPhrase, len(words))
	}
	var sb strings.Builder
	for _, word := range words {
		sb.WriteString(uniquePrefix(word, w.prefixLen))
	}
	sum := crc32.ChecksumIEEE([]byte(sb.String()))
	return words[sum%uint32(len(words))], nil
}

func uniquePrefix(word string, n int) string {
	r := []rune(word)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

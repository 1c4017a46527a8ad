// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package uplexa

import (
	"fmt"
	"math"
	"strings"
)

// Addresses use the CryptoNote base58 variant: the input is split into 8-byte
// blocks and every block is rendered at a fixed width, so the output length
// depends only on the input length. This is not the bitcoin encoding — a
// variable-width encoder cannot reproduce the per-block '1' padding.

const b58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// b58BlockWidths[n] is the encoded width of an n-byte block.
var b58BlockWidths = [9]int{0, 2, 3, 5, 6, 7, 9, 10, 11}

var (
	b58BlockSizes map[int]int
	b58Index      [128]int8
)

func init() {
	b58BlockSizes = make(map[int]int, len(b58BlockWidths))
	for size, width := range b58BlockWidths {
		b58BlockSizes[width] = size
	}
	for i := range b58Index {
		b58Index[i] = -1
	}
	for i := 0; i < len(b58Alphabet); i++ {
		b58Index[b58Alphabet[i]] = int8(i)
	}
}

func encodeBase58(data []byte) string {
	var sb strings.Builder
	for len(data) > 0 {
		n := len(data)
		if n > 8 {
			n = 8
		}
		sb.WriteString(encodeBase58Block(data[:n]))
		data = data[n:]
	}
	return sb.String()
}

func encodeBase58Block(block []byte) string {
	var num uint64
	for _, b := range block {
		num = num<<8 | uint64(b)
	}
	width := b58BlockWidths[len(block)]
	out := make([]byte, width)
	for i := range out {
		out[i] = b58Alphabet[0]
	}
	for i := width - 1; num > 0; i-- {
		out[i] = b58Alphabet[num%58]
		num /= 58
	}
	return string(out)
}

func decodeBase58(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)*8/11+8)
	for len(s) > 0 {
		n := len(s)
		if n > 11 {
			n = 11
		}
		block, err := decodeBase58Block(s[:n])
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
		s = s[n:]
	}
	return out, nil
}

func decodeBase58Block(s string) ([]byte, error) {
	size, ok := b58BlockSizes[len(s)]
	if !ok {
		return nil, fmt.Errorf("%w: base58 block of %d characters", ErrInvalidAddress, len(s))
	}
	var num uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		idx := int8(-1)
		if c < 128 {
			idx = b58Index[c]
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: base58 character %q", ErrInvalidAddress, c)
		}
		if num > (math.MaxUint64-uint64(idx))/58 {
			return nil, fmt.Errorf("%w: base58 block overflow", ErrInvalidAddress)
		}
		num = num*58 + uint64(idx)
	}
	if size < 8 && num >= 1<<(8*uint(size)) {
		return nil, fmt.Errorf("%w: base58 block out of range", ErrInvalidAddress)
	}
	block := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		block[i] = byte(num)
		num >>= 8
	}
	return block, nil
}

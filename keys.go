package radix

import (
	"bytes"
	"slices"
	"strings"
)

// StringKeys slices strings byte-wise.
type StringKeys struct{}

func (StringKeys) Slice(key string, start, length int) string { return key[start : start+length] }
func (StringKeys) SliceFrom(key string, start int) string { return key[start:] }
func (StringKeys) Len(key string) int { return len(key) }
func (StringKeys) Compare(a, b string) int { return strings.Compare(a, b) }

// BytesKeys slices byte slices. Slices share memory with the inserted key,
// so keys must not be modified after Insert.
type BytesKeys struct{}

func (BytesKeys) Slice(key []byte, start, length int) []byte {
	return key[start : start+length : start+length]
}
func (BytesKeys) SliceFrom(key []byte, start int) []byte { return key[start:] }
func (BytesKeys) Len(key []byte) int { return len(key) }
func (BytesKeys) Compare(a, b []byte) int { return bytes.Compare(a, b) }

// RuneKeys slices rune slices, so multi-byte characters are never split
// across edges.
type RuneKeys struct{}

func (RuneKeys) Slice(key []rune, start, length int) []rune {
	return key[start : start+length : start+length]
}
func (RuneKeys) SliceFrom(key []rune, start int) []rune { return key[start:] }
func (RuneKeys) Len(key []rune) int { return len(key) }
func (RuneKeys) Compare(a, b []rune) int { return slices.Compare(a, b) }

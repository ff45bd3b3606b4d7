package radix

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkKeyLaws[K any](t *testing.T, keys Keys[K], key K) {
	t.Helper()
	n := keys.Len(key)
	assert.Zero(t, keys.Compare(keys.Slice(key, 0, n), key))
	for start := 0; start <= n; start++ {
		assert.Zero(t, keys.Compare(keys.SliceFrom(key, start), keys.Slice(key, start, n-start)))
		assert.Equal(t, n-start, keys.Len(keys.SliceFrom(key, start)))
	}
}

func TestKeyLaws(t *testing.T) {
	for _, k := range []string{"", "a", "romane", "日本語"} {
		checkKeyLaws[string](t, StringKeys{}, k)
		checkKeyLaws[[]byte](t, BytesKeys{}, []byte(k))
		checkKeyLaws[[]rune](t, RuneKeys{}, []rune(k))
	}
}

func TestKeyCompare(t *testing.T) {
	assert.Negative(t, RuneKeys{}.Compare([]rune("ab"), []rune("abc")))
	assert.Positive(t, RuneKeys{}.Compare([]rune("b"), []rune("abc")))
	assert.Zero(t, RuneKeys{}.Compare(nil, []rune{}))
	assert.Zero(t, BytesKeys{}.Compare(nil, []byte{}))
	assert.Negative(t, StringKeys{}.Compare("", "a"))
}

var wordSet = []string{"romane", "romanus", "romulus", "rubens", "ruber", "rubicon", "rubicundus", "rom", "r", ""}

func TestBytesTree(t *testing.T) {
	tree := NewWithKeys[[]byte, int](BytesKeys{})
	for i, w := range wordSet {
		_, inserted := tree.Insert([]byte(w), i)
		require.True(t, inserted, w)
	}
	checkInvariants(t, tree)
	assert.Equal(t, len(wordSet), tree.Size())

	for i, w := range wordSet {
		v, ok := tree.Get([]byte(w))
		assert.True(t, ok, w)
		assert.Equal(t, i, v, w)
	}
	_, ok := tree.Get([]byte("rubi"))
	assert.False(t, ok)

	expected := append([]string{}, wordSet...)
	sort.Strings(expected)
	got := []string{}
	for k := range tree.All() {
		got = append(got, string(k))
	}
	assert.Equal(t, expected, got)

	assert.Equal(t, 1, tree.Erase([]byte("rubicon")))
	assert.Equal(t, 0, tree.Erase([]byte("rubicon")))
	checkInvariants(t, tree)
}

func TestRuneTree(t *testing.T) {
	tree := NewWithKeys[[]rune, string](RuneKeys{})
	words := []string{"日本", "日本語", "日曜日", "中文", "中国"}
	for _, w := range words {
		tree.Insert([]rune(w), w)
	}
	checkInvariants(t, tree)

	// edges never cut a character in half
	for _, e := range tree.root.children {
		assert.Equal(t, 1, len(e.label), string(e.label))
	}

	for _, w := range words {
		v, ok := tree.Get([]rune(w))
		assert.True(t, ok, w)
		assert.Equal(t, w, v)
	}
	_, ok := tree.Get([]rune("日"))
	assert.False(t, ok)

	assert.Equal(t, 1, tree.Erase([]rune("日曜日")))
	checkInvariants(t, tree)
	assert.Contains(t, tree.String(), `"日本"`)
}

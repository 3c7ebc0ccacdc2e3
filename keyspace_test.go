package headerbrute

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyspaceTotalIsSumOfPowers(t *testing.T) {
	keyspace := &Keyspace{Alphabet: DefaultAlphabet}

	assert.Equal(t, 16, keyspace.Total(1))
	assert.Equal(t, 16+256, keyspace.Total(2))
	assert.Equal(t, 16+256+4096, keyspace.Total(3))
	assert.Equal(t, 0, keyspace.Total(0))
}

func TestKeyspaceStreamMatchesCount(t *testing.T) {
	keyspace := &Keyspace{Alphabet: DefaultAlphabet}

	total := 0
	for length := 1; length <= 3; length++ {
		seen := map[string]bool{}
		for key := range keyspace.Stream(context.Background(), length) {
			require.Len(t, key, length)
			for _, char := range key {
				require.True(t, strings.ContainsRune(DefaultAlphabet, char), "unexpected character %q in %q", char, key)
			}
			require.False(t, seen[key], "duplicate key %q", key)
			seen[key] = true
		}

		require.Equal(t, keyspace.Count(length), len(seen))
		total += len(seen)
	}

	assert.Equal(t, keyspace.Total(3), total)
}

func TestKeyspaceStreamOrder(t *testing.T) {
	keyspace := &Keyspace{Alphabet: "ab"}

	keys := []string{}
	for key := range keyspace.Stream(context.Background(), 2) {
		keys = append(keys, key)
	}

	assert.Equal(t, []string{"aa", "ab", "ba", "bb"}, keys)
}

func TestKeyspaceStreamStopsOnCancel(t *testing.T) {
	keyspace := &Keyspace{Alphabet: DefaultAlphabet}
	ctx, cancel := context.WithCancel(context.Background())

	keys := keyspace.Stream(ctx, 3)
	<-keys
	cancel()

	received := 0
	for range keys {
		received++
	}

	// At most one key can already be in flight when the cancel lands.
	assert.LessOrEqual(t, received, 1)
}

func TestKeyspaceStreamEmpty(t *testing.T) {
	for _, keyspace := range []*Keyspace{{Alphabet: ""}, {Alphabet: "ab"}} {
		count := 0
		for range keyspace.Stream(context.Background(), 0) {
			count++
		}
		assert.Zero(t, count)
	}
}

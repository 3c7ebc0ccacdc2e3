package headerbrute

import (
	"context"
)

// Keyspace is every string that can be built from an alphabet.
type Keyspace struct {
	Alphabet string
}

// Stream returns a <- chan string that receives every key of exactly length characters, in positional order.
// Keys are generated as they are consumed, so a stream holds one key in memory at a time.
// The channel is closed when the keyspace is exhausted or ctx is cancelled. Each call starts a fresh stream.
func (k *Keyspace) Stream(ctx context.Context, length int) <-chan string {
	keys := make(chan string)
	symbols := []rune(k.Alphabet)

	go func(keys chan<- string) {
		defer close(keys)
		if length < 1 || len(symbols) == 0 {
			return
		}

		// Odometer over alphabet indices, rightmost position turns fastest.
		positions := make([]int, length)
		key := make([]rune, length)
		for ctx.Err() == nil {
			for i, position := range positions {
				key[i] = symbols[position]
			}

			select {
			case keys <- string(key):
			case <-ctx.Done():
				return
			}

			i := length - 1
			for ; i >= 0; i-- {
				positions[i]++
				if positions[i] < len(symbols) {
					break
				}
				positions[i] = 0
			}

			// Every position wrapped around, so the last key has been sent.
			if i < 0 {
				return
			}
		}
	}(keys)
	return keys
}

// Count returns the number of keys of exactly length characters.
func (k *Keyspace) Count(length int) int {
	if length < 1 {
		return 0
	}

	size := len([]rune(k.Alphabet))
	count := 1
	for i := 0; i < length; i++ {
		count *= size
	}
	return count
}

// Total returns the number of keys of every length from 1 to maxLength.
func (k *Keyspace) Total(maxLength int) int {
	var total int
	for length := 1; length <= maxLength; length++ {
		total += k.Count(length)
	}
	return total
}

package headerbrute

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ErrTransport wraps failures to get any HTTP response at all, such as a refused connection or a timeout.
// These end the run. HTTP error statuses are not transport failures.
var ErrTransport = errors.New("transport failure")

// Bruteforcer sends every candidate key to the target and reports the ones that come back with a flag.
// It works through one key length at a time: all keys of a length are finished before the next length starts.
type Bruteforcer struct {
	*Config
	probes  int64
	matches int64
}

// Probe sends a single candidate key and checks the response for a flag.
// It returns a nil Match when the flag header is missing or doesn't carry the flag prefix, whatever the status code.
func (b *Bruteforcer) Probe(ctx context.Context, key string) (*Match, error) {
	req, err := NewRequest(ctx, b.URL, b.ExtraHeaders)
	if err != nil {
		return nil, err
	}
	req.SetKey(b.KeyHeader, key)

	atomic.AddInt64(&b.probes, 1)
	response, err := b.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: key %q: %w", ErrTransport, key, err)
	}
	defer response.Discard()

	flag, ok := response.Flag(b.FlagHeader)
	if !ok || !strings.HasPrefix(flag, b.FlagPrefix) {
		return nil, nil
	}

	atomic.AddInt64(&b.matches, 1)
	return &Match{
		Key:        key,
		Flag:       flag,
		StatusCode: response.StatusCode,
	}, nil
}

// Run tries every key from length 1 up to MaxKeyLength.
// Matches don't stop the run. The first transport failure cancels in-flight probes and is returned, and no further lengths are tried.
func (b *Bruteforcer) Run(ctx context.Context) error {
	err := b.Validate()
	if err != nil {
		return err
	}

	keyspace := &Keyspace{Alphabet: b.Alphabet}
	b.Logger.Printf("Sending %d requests to %s", keyspace.Total(b.MaxKeyLength), b.URL)

	for length := 1; length <= b.MaxKeyLength; length++ {
		b.Logger.Printf("Trying %d keys of length %d", keyspace.Count(length), length)
		err := b.runLength(ctx, keyspace, length)
		if err != nil {
			return err
		}
	}

	probes, matches := b.Stats()
	b.Logger.Printf("Finished. Sent %d requests, found %d matches.", probes, matches)
	return nil
}

// Stats returns how many probes have been sent and how many of them matched.
func (b *Bruteforcer) Stats() (probes, matches int64) {
	return atomic.LoadInt64(&b.probes), atomic.LoadInt64(&b.matches)
}

// runLength streams every key of one length through a pool of PoolSize workers and waits for all of them.
func (b *Bruteforcer) runLength(ctx context.Context, keyspace *Keyspace, length int) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(b.PoolSize)

	for key := range keyspace.Stream(groupCtx, length) {
		key := key
		group.Go(func() error {
			return b.requestWorker(groupCtx, key)
		})
	}

	err := group.Wait()
	if err != nil {
		return err
	}

	// The stream also closes early when the caller cancels.
	return ctx.Err()
}

func (b *Bruteforcer) requestWorker(ctx context.Context, key string) error {
	match, err := b.Probe(ctx, key)
	if err != nil {
		return err
	}

	if match == nil {
		return nil
	}

	for _, reporter := range b.Reporters {
		err := reporter.Report(match)
		if err != nil {
			b.Logger.Printf("Error running reporter %s: %v", reporter.Name(), err)
		}
	}
	return nil
}

package random_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gocbc/pkg/random"
)

const ivLength = 16

var errBroken = errors.New("broken source")

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recorder is a source that counts calls and either fails or returns fixed bytes.
type recorder struct {
	mu    sync.Mutex
	name  string
	fail  bool
	fill  byte
	calls int
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Generate(n int) ([]byte, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	if r.fail {
		return nil, errBroken
	}

	return bytes.Repeat([]byte{r.fill}, n), nil
}

type absent struct{ recorder }

func (*absent) Available() bool { return false }

func TestChain_DefaultSources(t *testing.T) {
	chain := random.NewChain(random.WithLogger(quietLogger()))

	require.Equal(t, []string{"crypto/rand", "tink", "getrandom"}, chain.Sources())

	iv, err := chain.Generate(ivLength, false)
	require.NoError(t, err)
	assert.Len(t, iv, ivLength)

	other, err := chain.Generate(ivLength, false)
	require.NoError(t, err)
	assert.NotEqual(t, iv, other)
}

func TestChain_WithoutSecondary(t *testing.T) {
	chain := random.NewChain(random.WithoutSecondary())

	assert.Equal(t, []string{"crypto/rand", "getrandom"}, chain.Sources())
}

func TestChain_StopsAtFirstSuccess(t *testing.T) {
	first := &recorder{name: "first", fill: 1}
	second := &recorder{name: "second", fill: 2}

	chain := random.NewChain(random.WithSources(first, second), random.WithLogger(quietLogger()))

	iv, err := chain.Generate(ivLength, false)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{1}, ivLength), iv)
	assert.Equal(t, 1, first.calls)
	assert.Zero(t, second.calls)
}

func TestChain_FallsThroughInOrder(t *testing.T) {
	first := &recorder{name: "first", fail: true}
	second := &recorder{name: "second", fail: true}
	third := &recorder{name: "third", fill: 3}

	chain := random.NewChain(random.WithSources(first, second, third), random.WithLogger(quietLogger()))

	iv, err := chain.Generate(ivLength, false)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{3}, ivLength), iv)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 1, third.calls)
}

func TestChain_SkipsUnavailableSource(t *testing.T) {
	missing := &absent{recorder{name: "missing", fill: 9}}
	next := &recorder{name: "next", fill: 4}

	chain := random.NewChain(random.WithSources(missing, next), random.WithLogger(quietLogger()))

	iv, err := chain.Generate(ivLength, false)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{4}, ivLength), iv)
	assert.Zero(t, missing.calls)
}

func TestChain_ShortReadFallsThrough(t *testing.T) {
	short := random.Func{Label: "short", Fn: func(n int) ([]byte, error) { return make([]byte, n-1), nil }}
	next := &recorder{name: "next", fill: 5}

	chain := random.NewChain(random.WithSources(short, next), random.WithLogger(quietLogger()))

	iv, err := chain.Generate(ivLength, false)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{5}, ivLength), iv)
}

func TestChain_AllSecureFail_NotAllowed(t *testing.T) {
	insecure := &recorder{name: "insecure", fill: 'A'}

	chain := random.NewChain(
		random.WithSources(&recorder{name: "a", fail: true}, &recorder{name: "b", fail: true}),
		random.WithInsecure(insecure),
		random.WithLogger(quietLogger()),
	)

	iv, err := chain.Generate(ivLength, false)
	require.ErrorIs(t, err, random.ErrUnavailable)
	assert.Nil(t, iv)
	assert.Zero(t, insecure.calls)
	assert.EqualError(t, err, "unable to generate IV")
}

func TestChain_AllSecureFail_Allowed(t *testing.T) {
	chain := random.NewChain(
		random.WithSources(&recorder{name: "a", fail: true}, &recorder{name: "b", fail: true}),
		random.WithLogger(quietLogger()),
	)

	iv, err := chain.Generate(ivLength, true)
	require.NoError(t, err)
	require.Len(t, iv, ivLength)

	for _, c := range iv {
		assert.True(t, strings.ContainsRune(random.Alphabet(), rune(c)), "unexpected character %q", c)
	}
}

func TestChain_AllSecureFail_LegacyRange(t *testing.T) {
	chain := random.NewChain(
		random.WithSources(&recorder{name: "a", fail: true}),
		random.WithLegacyIndexRange(true),
		random.WithLogger(quietLogger()),
	)

	reachable := random.Alphabet()[:ivLength]

	for range 50 {
		iv, err := chain.Generate(ivLength, true)
		require.NoError(t, err)

		for _, c := range iv {
			assert.True(t, strings.ContainsRune(reachable, rune(c)), "character %q outside legacy range", c)
		}
	}
}

func TestChain_InsecureFailure(t *testing.T) {
	chain := random.NewChain(
		random.WithSources(&recorder{name: "a", fail: true}),
		random.WithInsecure(&recorder{name: "insecure", fail: true}),
		random.WithLogger(quietLogger()),
	)

	_, err := chain.Generate(ivLength, true)
	require.ErrorIs(t, err, random.ErrUnavailable)
	require.ErrorIs(t, err, errBroken)
}

func TestChain_InvalidLength(t *testing.T) {
	chain := random.NewChain(random.WithLogger(quietLogger()))

	for _, n := range []int{0, -1} {
		_, err := chain.Generate(n, true)
		require.ErrorIs(t, err, random.ErrInvalidLength)
	}
}

func TestChain_LogsFallthrough(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	chain := random.NewChain(
		random.WithSources(&recorder{name: "flaky", fail: true}),
		random.WithLogger(logger),
	)

	_, err := chain.Generate(ivLength, true)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "randomness source failed")
	assert.Contains(t, out, "source=flaky")
	assert.Contains(t, out, "insecure=true")
}

func TestChain_Concurrent(t *testing.T) {
	chain := random.NewChain(random.WithLogger(quietLogger()))

	var wg sync.WaitGroup

	errs := make(chan error, 32)

	for range 32 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			iv, err := chain.Generate(ivLength, false)
			if err == nil && len(iv) != ivLength {
				err = random.ErrShortRead
			}

			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

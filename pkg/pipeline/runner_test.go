package pipeline

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/gramod/pkg/errors"
	"github.com/matzehuels/gramod/pkg/observability"
)

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(0, nil)
	assert.Equal(t, DefaultBase, r.Base)
	assert.NotNil(t, r.Logger)
}

func TestCompute(t *testing.T) {
	r := NewRunner(3, log.New(&bytes.Buffer{}))

	res, err := r.Compute(context.Background(), Request{Modulus: 1000})
	require.NoError(t, err)
	assert.Equal(t, 387, res.Residue)
	assert.Equal(t, 1000, res.Modulus)
	assert.Empty(t, res.Trace, "trace is only collected with Steps")
	assert.NotEmpty(t, res.Levels)
}

func TestComputeSteps(t *testing.T) {
	r := NewRunner(3, log.New(&bytes.Buffer{}))

	res, err := r.Compute(context.Background(), Request{Modulus: 108, Steps: true})
	require.NoError(t, err)
	assert.Equal(t, 27, res.Residue)
	assert.Equal(t, []string{
		"3^n mod 108 = [1, 3, 9, 27, 81] => 27",
		"Rotation is",
		"3^n mod 108 = [81, 27] (cycle length = 2)",
		"3^3^n mod 108 = [27] (cycle length = 1)",
	}, res.Trace)
}

func TestComputeExact(t *testing.T) {
	r := NewRunner(3, nil)
	res, err := r.Compute(context.Background(), Request{Modulus: 243, Steps: true})
	require.NoError(t, err)
	assert.True(t, res.Exact)
	assert.Equal(t, 0, res.Residue)
	assert.Empty(t, res.Levels)
}

func TestComputeInvalid(t *testing.T) {
	r := NewRunner(3, nil)

	for _, n := range []int{-3, 0, 1} {
		_, err := r.Compute(context.Background(), Request{Modulus: n})
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidModulus), "modulus %d: %v", n, err)
	}

	bad := &Runner{Base: 1, Logger: log.Default()}
	_, err := bad.Compute(context.Background(), Request{Modulus: 10})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidBase), "got %v", err)
}

func TestComputeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(3, nil).Compute(ctx, Request{Modulus: 1000})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComputeLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := NewRunner(3, logger).Compute(context.Background(), Request{Modulus: 2018})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "reduced tower")
	assert.Contains(t, buf.String(), "residue=1557")
}

type recordingHooks struct {
	observability.NoopReducerHooks
	starts    int
	completes int
	levels    int
	err       error
}

func (h *recordingHooks) OnReduceStart(context.Context, int, int) { h.starts++ }
func (h *recordingHooks) OnReduceComplete(_ context.Context, _, _, levels int, _ time.Duration, err error) {
	h.completes++
	h.levels = levels
	h.err = err
}

func TestComputeHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetReducerHooks(h)
	defer observability.Reset()

	_, err := NewRunner(3, nil).Compute(context.Background(), Request{Modulus: 127})
	require.NoError(t, err)
	assert.Equal(t, 1, h.starts)
	assert.Equal(t, 1, h.completes)
	assert.Equal(t, 3, h.levels)
	assert.NoError(t, h.err)
}

func TestRunnerSelfCheck(t *testing.T) {
	assert.NoError(t, NewRunner(3, log.New(&bytes.Buffer{})).SelfCheck())
}

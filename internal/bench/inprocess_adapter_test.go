package bench

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInProcessAdapter_Measure(t *testing.T) {
	calls := 0
	a := &inProcessAdapter{
		tool:       "goldmark",
		iterations: 5,
		warmup:     2,
		convert:    func() error { calls++; return nil },
	}
	out := a.Measure(context.Background())

	require.True(t, out.Succeeded(), "outcome error: %s", out.Err)
	require.Equal(t, 7, calls)
	require.Greater(t, *out.AverageSeconds, 0.0)
}

func TestInProcessAdapter_ConvertError(t *testing.T) {
	a := &inProcessAdapter{
		tool:       "goldmark",
		iterations: 3,
		warmup:     0,
		convert:    func() error { return errors.New("renderer not registered") },
	}
	out := a.Measure(context.Background())

	require.False(t, out.Succeeded())
	require.Equal(t, "renderer not registered", out.Err)
}

func TestInProcessAdapter_PanicRecovered(t *testing.T) {
	a := &inProcessAdapter{
		tool:       "goldmark",
		iterations: 1,
		warmup:     0,
		convert:    func() error { panic("corrupt AST") },
	}
	out := a.Measure(context.Background())

	require.False(t, out.Succeeded())
	require.Contains(t, out.Err, "panic: corrupt AST")
}

func TestInProcessAdapter_GoldmarkEndToEnd(t *testing.T) {
	a, err := New(statusFor(t, "goldmark"), testDoc(), 3, 1)
	require.NoError(t, err)

	out := a.Measure(context.Background())

	require.True(t, out.Succeeded(), "outcome error: %s", out.Err)
	require.Equal(t, "goldmark", out.Tool)
	require.Greater(t, *out.AverageSeconds, 0.0)
}

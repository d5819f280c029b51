package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-console/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// lingeringReader blocks the first read until ctx ends, then takes a moment
// longer before reporting end of input.
type lingeringReader struct {
	ctx      context.Context
	reading  chan struct{}
	finished atomic.Bool
}

func (that *lingeringReader) Read([]byte) (int, error) {
	close(that.reading)
	<-that.ctx.Done()
	time.Sleep(50 * time.Millisecond)
	that.finished.Store(true)

	return 0, io.EOF
}

func TestRun(t *testing.T) {
	t.Run("Plays a match and quits", func(t *testing.T) {
		// Given: two humans who play a five on the first row, then decline a replay
		input := strings.Join([]string{
			"1", "Dori", "1", "Nemo",
			"1", "1", "2", "1",
			"1", "2", "2", "2",
			"1", "3", "2", "3",
			"1", "4", "2", "4",
			"1", "5",
			"n",
		}, "\n") + "\n"
		out := &bytes.Buffer{}

		// When: the app runs
		err := Run(context.Background(), testLogger(), &config.Config{}, strings.NewReader(input), out)

		// Then: the game ends with a winner
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Welcome to Gomoku")
		assert.Contains(t, out.String(), " wins.")
		assert.Contains(t, out.String(), "Play Again? [y/n]: ")
	})

	t.Run("Closed input ends cleanly", func(t *testing.T) {
		err := Run(context.Background(), testLogger(), &config.Config{}, strings.NewReader(""), io.Discard)

		require.NoError(t, err)
	})

	t.Run("Cancelled context ends cleanly", func(t *testing.T) {
		// Given: input that never arrives
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: the app runs with a cancelled context
		err := Run(ctx, testLogger(), &config.Config{}, reader, io.Discard)

		// Then: it returns without waiting for input
		require.NoError(t, err)
	})

	t.Run("Cancellation waits for the game to stop", func(t *testing.T) {
		// Given: a game blocked on input that is still busy after cancellation
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		reader := &lingeringReader{ctx: ctx, reading: make(chan struct{})}

		go func() {
			<-reader.reading
			cancel()
		}()

		// When: the app runs and is cancelled mid prompt
		err := Run(ctx, testLogger(), &config.Config{}, reader, io.Discard)

		// Then: it returns only after the game goroutine is done
		require.NoError(t, err)
		assert.True(t, reader.finished.Load())
	})

	t.Run("Scoreboard without a host", func(t *testing.T) {
		conf := &config.Config{Scoreboard: config.Scoreboard{Enabled: true}}

		err := Run(context.Background(), testLogger(), conf, strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, ErrAddrNotFound)
	})

	t.Run("Scoreboard with unreachable redis", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		conf := &config.Config{
			Scoreboard: config.Scoreboard{Enabled: true},
			Redis:      config.Redis{Host: "127.0.0.1", Port: "1"},
		}

		err := Run(ctx, testLogger(), conf, strings.NewReader(""), io.Discard)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not connect to redis storage")
	})
}

package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trentd187/golf-companion/internal/store"
)

// openStream subscribes to /changes and returns the stream's lines.
func openStream(t *testing.T, url string) <-chan string {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := make(chan string, 32)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(resp.Body)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()
	return lines
}

// nextLine waits for the next stream line starting with prefix.
func nextLine(t *testing.T, lines <-chan string, prefix string) string {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case line, ok := <-lines:
			require.True(t, ok, "stream closed while waiting for %q", prefix)
			if strings.HasPrefix(line, prefix) {
				return line
			}
		case <-timeout:
			t.Fatalf("no %q line on the stream", prefix)
		}
	}
}

func decodeFrame(t *testing.T, line string) store.Change {
	t.Helper()
	var c store.Change
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &c))
	return c
}

func TestStreamChangesDeliversTopicEvents(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	base := env.listen(t)

	lines := openStream(t, base+"/api/v1/changes?topic=round")
	// The comment line is written after the hub has registered the stream.
	nextLine(t, lines, ": subscribed to round")

	// A tournament change goes out first on another topic. Events leave the
	// hub in order, so if it reached this stream it would be the first frame.
	require.Equal(t, http.StatusCreated, env.do(t, "POST", "/api/v1/tournaments", map[string]any{"name": "Members Cup", "is_public": true}, nil))
	require.Equal(t, http.StatusCreated, env.do(t, "POST", "/api/v1/rounds", StartRoundRequest{CourseName: "Pebble Beach"}, nil))

	change := decodeFrame(t, nextLine(t, lines, "data: "))
	require.Equal(t, store.TopicRound, change.Topic)
	require.Equal(t, "round.started", change.Action)
	require.NotEmpty(t, change.ID)
	require.Equal(t, uint64(2), change.Seq, "the tournament change took seq 1")

	require.Equal(t, http.StatusOK, env.do(t, "PUT", "/api/v1/rounds/current/hole", map[string]int{"hole": 4}, nil))
	change = decodeFrame(t, nextLine(t, lines, "data: "))
	require.Equal(t, "hole.selected", change.Action)
	require.Equal(t, uint64(3), change.Seq)
}

func TestStreamChangesWithoutTopicGetsEverything(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	base := env.listen(t)

	lines := openStream(t, base+"/api/v1/changes")
	nextLine(t, lines, ": subscribed to *")

	require.Equal(t, http.StatusOK, env.do(t, "POST", "/api/v1/challenges/1/complete", nil, nil))
	require.Equal(t, http.StatusCreated, env.do(t, "POST", "/api/v1/range/sessions", map[string]string{"club": "Driver"}, nil))

	first := decodeFrame(t, nextLine(t, lines, "data: "))
	second := decodeFrame(t, nextLine(t, lines, "data: "))
	require.Equal(t, []string{store.TopicChallenges, store.TopicRange}, []string{first.Topic, second.Topic})
}

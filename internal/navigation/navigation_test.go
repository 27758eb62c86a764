package navigation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu     sync.Mutex
	topics []string
}

func (r *recordingNotifier) Broadcast(topic string, _ []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics = append(r.topics, topic)
}

func TestInitialState(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	require.Equal(t, ScreenHome, m.CurrentScreen())
	require.False(t, m.CanGoBack())
	require.Len(t, m.History(), 1)
}

func TestNavigateToTracksMostRecentScreen(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	screens := []string{ScreenStats, ScreenHeatmapVisualization, ScreenStats, ScreenStats}
	for _, s := range screens {
		m.NavigateTo(s, nil)
		require.Equal(t, s, m.CurrentScreen())
		require.True(t, m.CanGoBack())
	}
	// No de-duplication: root plus four pushes.
	require.Len(t, m.History(), 5)
}

func TestNavigateBackStopsAtRoot(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	m.NavigateTo(ScreenSocialHub, nil)
	m.NavigateTo(ScreenAddFriend, map[string]string{"query": "sarah"})
	m.NavigateTo(ProfileScreen("friend1"), nil)

	require.True(t, m.NavigateBack())
	require.Equal(t, ScreenAddFriend, m.CurrentScreen())
	require.Equal(t, "sarah", m.Current().Params["query"])

	for m.CanGoBack() {
		require.True(t, m.NavigateBack())
	}
	require.Equal(t, ScreenHome, m.CurrentScreen())

	// Idempotent at the boundary.
	require.False(t, m.NavigateBack())
	require.False(t, m.NavigateBack())
	require.Equal(t, ScreenHome, m.CurrentScreen())
	require.Len(t, m.History(), 1)
}

func TestBackDiscardsForwardEntries(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	m.NavigateTo(ScreenProfile, nil)
	m.NavigateTo(ScreenSettings, nil)
	m.NavigateBack()
	m.NavigateTo(ScreenRoundHistory, nil)

	var got []string
	for _, e := range m.History() {
		got = append(got, e.Screen)
	}
	require.Equal(t, []string{ScreenHome, ScreenProfile, ScreenRoundHistory}, got)
}

func TestParamsAreCopied(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	params := map[string]string{"club": "Driver"}
	m.NavigateTo(ScreenRangeMode, params)
	params["club"] = "Putter"

	cur := m.Current()
	require.Equal(t, "Driver", cur.Params["club"])
	cur.Params["club"] = "LW"
	require.Equal(t, "Driver", m.Current().Params["club"])
}

func TestResetAndNotifications(t *testing.T) {
	t.Parallel()

	n := &recordingNotifier{}
	m := NewManager(n)
	m.NavigateTo(ScreenCoach, nil)
	m.NavigateBack()
	m.NavigateBack() // no-op, no event
	m.NavigateTo(ScreenCaddie, nil)
	m.Reset()

	require.Equal(t, ScreenHome, m.CurrentScreen())
	require.False(t, m.CanGoBack())
	require.Equal(t, []string{Topic, Topic, Topic, Topic}, n.topics)
}

func TestProfileScreenRoundTrip(t *testing.T) {
	t.Parallel()

	ids := []string{"user1", "friend2", "", "user-profile-nested", "a b c", "1234"}
	for _, id := range ids {
		screen := ProfileScreen(id)
		assert.True(t, IsProfileScreen(screen), "screen %q", screen)

		got, ok := ExtractUserID(screen)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}

	_, ok := ExtractUserID(ScreenProfile)
	assert.False(t, ok)
	assert.False(t, IsProfileScreen(ScreenProfile))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		screen string
		want   string
	}{
		{ScreenStats, ScreenStats},
		{ScreenRoundHistory, ScreenRoundHistory},
		{"user-profile-friend1", "user-profile-friend1"},
		{"does-not-exist", ScreenHome},
		{"", ScreenHome},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve(tt.screen), "screen %q", tt.screen)
	}
}

func TestCategoriesOnlyNameCanonicalScreens(t *testing.T) {
	t.Parallel()

	for name, screens := range Categories {
		for _, s := range screens {
			assert.True(t, IsCanonical(s), "category %s lists unknown screen %s", name, s)
		}
	}
}

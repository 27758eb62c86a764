package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentd187/golf-companion/internal/models"
)

func usernames(users []models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Username
	}
	return out
}

func TestSearchUsers(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "username substring", query: "golf", want: []string{"alexgolf", "sarahgolf", "emmagolf", "davidt_golf"}},
		{name: "display name ignores case", query: "CHEN", want: []string{"mikeputts"}},
		{name: "display name only", query: "son", want: []string{"alexgolf", "sarahgolf", "davidt_golf"}},
		{name: "no match", query: "tiger", want: []string{}},
		{name: "empty query matches everyone", query: "", want: usernames(s.AllUsers())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usernames(s.SearchUsers(tt.query)))
		})
	}
}

func TestUserByID(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	u, ok := s.UserByID("user6")
	require.True(t, ok)
	require.Equal(t, "Lisa Chang", u.DisplayName)

	_, ok = s.UserByID("nobody")
	require.False(t, ok)
}

func TestAddFriend(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.True(t, s.AddFriend("davidt_golf"))
	friends := s.Friends()
	require.Len(t, friends, 4)
	added := friends[3]
	require.Equal(t, "user5", added.User.ID)
	require.Equal(t, models.FriendStatusPending, added.Status)
	require.Equal(t, fixedNow, added.AddedAt)

	require.False(t, s.AddFriend("davidt_golf"), "second request fails")
	require.Len(t, s.Friends(), 4, "and does not duplicate the entry")

	require.False(t, s.AddFriend("sarahgolf"), "already an accepted friend")
	require.False(t, s.AddFriend("nobody"))
	require.False(t, s.AddFriend("DAVIDT_GOLF"), "username match is exact")
}

func TestRemoveFriend(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	s.RemoveFriend("friend2")
	s.RemoveFriend("nobody")

	var ids []string
	for _, f := range s.Friends() {
		ids = append(ids, f.User.ID)
	}
	require.Equal(t, []string{"friend1", "user4"}, ids)

	require.True(t, s.AddFriend("mikeputts"), "a removed friend can be added again")
}

func TestSendGameInvitation(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	when := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

	created := s.SendGameInvitation([]string{"friend1", "ghost", "user6"}, "Pebble Beach", when, "Tee off at 8?")
	require.Len(t, created, 2)

	all := s.GameInvitations()
	require.Len(t, all, 2)
	for i, to := range []string{"friend1", "user6"} {
		require.Equal(t, to, all[i].To)
		require.Equal(t, "user1", all[i].From.ID)
		require.Equal(t, models.InvitationStatusPending, all[i].Status)
		require.Equal(t, when, all[i].Date)
	}
	require.NotEqual(t, all[0].ID, all[1].ID)
}

func TestChallenges(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	// Completion snaps progress to the target, it does not just flip a flag.
	require.True(t, s.CompleteChallenge("1"))
	c := s.WeeklyChallenges()[0]
	require.Equal(t, 7, c.Current)
	require.True(t, c.Completed)

	require.False(t, s.CompleteChallenge("missing"))

	require.True(t, s.UpdateChallengeProgress("2", 2))
	require.Equal(t, 2, s.WeeklyChallenges()[1].Current)
	require.True(t, s.UpdateChallengeProgress("2", 10))
	require.Equal(t, 3, s.WeeklyChallenges()[1].Current, "progress is capped at the target")
	require.False(t, s.WeeklyChallenges()[1].Completed)
	require.False(t, s.UpdateChallengeProgress("missing", 1))

	require.Len(t, s.Achievements(), 2)
}

func TestTournaments(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	t.Run("public tournament has no join code", func(t *testing.T) {
		name := "Club Open"
		tour := s.CreateTournament(models.TournamentInput{Name: &name, IsPublic: true})
		require.Equal(t, "Club Open", tour.Name)
		require.Equal(t, "Unknown Course", tour.Course)
		require.Equal(t, "user1", tour.CreatedBy)
		require.Nil(t, tour.JoinCode)
		require.Len(t, tour.Players, 1)
	})

	t.Run("private tournament joined by code", func(t *testing.T) {
		tour := s.CreateTournament(models.TournamentInput{})
		require.Equal(t, "Unnamed Tournament", tour.Name)
		require.NotNil(t, tour.JoinCode)
		require.Equal(t, "ABC123", *tour.JoinCode)

		joined, ok := s.JoinTournamentByCode(" abc123 ")
		require.True(t, ok)
		require.Equal(t, tour.ID, joined.ID)
		require.Len(t, joined.Players, 1, "creator is not added twice")

		_, ok = s.JoinTournamentByCode("ZZZZZZ")
		require.False(t, ok)
	})

	t.Run("private tournament cannot be joined by ID", func(t *testing.T) {
		n := &recordingNotifier{}
		private := newTestStore(t, WithNotifier(n))
		tour := private.CreateTournament(models.TournamentInput{})

		private.mu.Lock()
		private.tournamentLocked(tour.ID).Players = nil
		private.mu.Unlock()

		require.False(t, private.JoinTournament(tour.ID))
		require.Empty(t, private.Tournaments()[1].Players)
		require.Equal(t, []string{"tournament.created"}, n.actions())

		joined, ok := private.JoinTournamentByCode(*tour.JoinCode)
		require.True(t, ok)
		require.Len(t, joined.Players, 1)
	})

	t.Run("scores and completion", func(t *testing.T) {
		require.True(t, s.JoinTournament("1"))
		require.True(t, s.RecordTournamentScore("1", "user1", 74))
		require.False(t, s.RecordTournamentScore("1", "user6", 70), "only players get scores")
		require.True(t, s.CompleteTournament("1"))
		require.False(t, s.CompleteTournament("missing"))
		require.False(t, s.JoinTournament("missing"))

		spring := s.Tournaments()[0]
		require.True(t, spring.Completed)
		require.Equal(t, map[string]int{"user1": 74}, spring.Scores)
		require.Len(t, spring.Players, 1)
	})
}

func TestLeaderboard(t *testing.T) {
	t.Parallel()

	usernames := func(entries []models.LeaderboardEntry) []string {
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.Username
		}
		return out
	}

	tests := []struct {
		criteria models.LeaderboardCriteria
		want     []string
		leader   float64
	}{
		{models.LeaderboardByScore, []string{"emmagolf", "sarahgolf", "alexgolf", "mikeputts"}, 76.3},
		{models.LeaderboardByDistance, []string{"mikeputts", "alexgolf", "sarahgolf", "emmagolf"}, 265},
		{models.LeaderboardByFairways, []string{"emmagolf", "sarahgolf", "alexgolf", "mikeputts"}, 79},
	}
	for _, tt := range tests {
		t.Run(string(tt.criteria), func(t *testing.T) {
			s := newTestStore(t)
			require.True(t, s.AddFriend("lisachang_pro"), "pending friends stay off the board")

			board := s.Leaderboard(tt.criteria)
			require.Equal(t, tt.want, usernames(board))
			require.Equal(t, tt.leader, board[0].Value)
			for i, e := range board {
				require.Equal(t, i+1, e.Rank)
				require.Equal(t, e.UserID == "user1", e.IsCurrentUser)
			}
		})
	}

	t.Run("current user uses live player stats", func(t *testing.T) {
		s := newTestStore(t)
		s.UpdatePlayerStats(models.PlayerStatsPatch{DrivingDistance: intp(300)})

		board := s.Leaderboard(models.LeaderboardByDistance)
		require.Equal(t, "alexgolf", board[0].Username)
		require.Equal(t, float64(300), board[0].Value)
	})

	t.Run("ties keep the current user first", func(t *testing.T) {
		s := newTestStore(t)
		s.UpdatePlayerStats(models.PlayerStatsPatch{FairwaysHit: intp(79)})

		board := s.Leaderboard(models.LeaderboardByFairways)
		require.Equal(t, []string{"alexgolf", "emmagolf"}, usernames(board)[:2])
	})
}

func TestParseLeaderboardCriteria(t *testing.T) {
	t.Parallel()
	c, ok := models.ParseLeaderboardCriteria("")
	require.True(t, ok)
	require.Equal(t, models.LeaderboardByScore, c)

	_, ok = models.ParseLeaderboardCriteria("putts")
	require.False(t, ok)
}

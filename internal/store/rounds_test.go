package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trentd187/golf-companion/internal/models"
)

func TestStartNewRound(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	s.SetCurrentHole(7)

	round := s.StartNewRound("Pebble Beach")
	require.Equal(t, "Pebble Beach", round.CourseName)
	require.Equal(t, fixedNow, round.StartTime)
	require.False(t, round.Completed)
	require.Len(t, round.Holes, 18)
	require.Equal(t, 1, s.CurrentHole())

	for i, h := range round.Holes {
		require.Equal(t, i+1, h.HoleNumber)
		require.Equal(t, models.StandardPars[i], h.Par)
		require.Zero(t, h.Strokes)
		require.Zero(t, h.Putts)
		require.Empty(t, h.Shots)
		require.False(t, h.Completed)
	}
}

func TestStartNewRoundReplacesActiveRound(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	first := s.StartNewRound("Augusta National")
	s.UpdateHoleScore(1, models.HolePatch{Strokes: intp(6)})
	second := s.StartNewRound("Bethpage Black")

	require.NotEqual(t, first.ID, second.ID)
	cur, ok := s.CurrentRound()
	require.True(t, ok)
	require.Equal(t, "Bethpage Black", cur.CourseName)
	require.Zero(t, cur.Holes[0].Strokes)
	require.Len(t, s.RoundHistory(), 3, "the discarded round is not archived")
}

func TestPebbleBeachScenario(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	s.StartNewRound("Pebble Beach")
	require.Equal(t, 1, s.CurrentHole())

	s.UpdateHoleScore(1, models.HolePatch{Strokes: intp(4), Putts: intp(2), Completed: boolp(true)})
	require.Empty(t, s.HoleShots(1))

	round, _ := s.CurrentRound()
	require.Equal(t, 4, round.Holes[0].Strokes)
	require.Equal(t, 2, round.Holes[0].Putts)
	require.True(t, round.Holes[0].Completed)
	for _, h := range round.Holes[1:] {
		require.Zero(t, h.Strokes, "hole %d", h.HoleNumber)
		require.False(t, h.Completed)
	}
}

func TestHoleScoresSumToTotal(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	s.StartNewRound("X")

	want := 0
	for n := 1; n <= 18; n++ {
		strokes := n%4 + 3
		want += strokes
		s.UpdateHoleScore(n, models.HolePatch{Strokes: intp(strokes)})
	}

	round, _ := s.CurrentRound()
	require.Equal(t, want, round.TotalStrokes())

	summary, ok := s.CompleteRound()
	require.True(t, ok)
	require.Equal(t, want, summary.TotalScore)
	require.Equal(t, 18, summary.Holes)
	require.Equal(t, 12.5, summary.Handicap)
	require.Equal(t, round.ID, summary.ID)

	_, active := s.CurrentRound()
	require.False(t, active)
	require.Equal(t, 1, s.CurrentHole())
	require.Equal(t, summary, s.RoundHistory()[0], "completed round is archived first")
}

func TestRoundOperationsWithoutActiveRound(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	s.UpdateHoleScore(1, models.HolePatch{Strokes: intp(3)})
	_, added := s.AddShot(models.ShotInput{HoleNumber: 1, Club: "Driver"})
	require.False(t, added)
	require.NotNil(t, s.HoleShots(1))
	require.Empty(t, s.HoleShots(1))

	_, ok := s.CompleteRound()
	require.False(t, ok)
	require.Len(t, s.RoundHistory(), 3)
}

func TestAddShot(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	s.StartNewRound("Pinehurst No. 2")

	shot, ok := s.AddShot(models.ShotInput{HoleNumber: 3, Club: "Driver", Distance: 240, Accuracy: "fairway", X: 40, Y: 20})
	require.True(t, ok)
	require.NotEmpty(t, shot.ID)

	_, ok = s.AddShot(models.ShotInput{HoleNumber: 3, Club: "7-Iron", Distance: 150, Accuracy: "green", X: 50, Y: 80})
	require.True(t, ok)

	shots := s.HoleShots(3)
	require.Len(t, shots, 2)
	require.Equal(t, "Driver", shots[0].Club)
	require.Equal(t, "7-Iron", shots[1].Club)
	require.Empty(t, s.HoleShots(4))

	_, ok = s.AddShot(models.ShotInput{HoleNumber: 25, Club: "PW"})
	require.False(t, ok)
}

func TestUpdateHoleScoreIgnoresOutOfRange(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	s.StartNewRound("St. Andrews")

	s.UpdateHoleScore(0, models.HolePatch{Strokes: intp(9)})
	s.UpdateHoleScore(19, models.HolePatch{Strokes: intp(9)})

	round, _ := s.CurrentRound()
	require.Zero(t, round.TotalStrokes())
}

func TestSetCurrentHole(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.True(t, s.SetCurrentHole(18))
	require.Equal(t, 18, s.CurrentHole())
	require.False(t, s.SetCurrentHole(0))
	require.False(t, s.SetCurrentHole(19))
	require.Equal(t, 18, s.CurrentHole())
}

func TestAddRoundDefaults(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	r := s.AddRound(models.RoundInput{})
	require.Equal(t, "Unknown Course", r.CourseName)
	require.Equal(t, 18, r.Holes)
	require.Equal(t, 12.5, r.Handicap)
	require.Equal(t, fixedNow, r.Date)

	r = s.AddRound(models.RoundInput{CourseName: strp("Torrey Pines"), TotalScore: intp(41), Holes: intp(9)})
	require.Equal(t, "Torrey Pines", r.CourseName)
	require.Equal(t, 41, r.TotalScore)
	require.Equal(t, 9, r.Holes)

	history := s.RoundHistory()
	require.Len(t, history, 5)
	require.Equal(t, r.ID, history[0].ID)
}

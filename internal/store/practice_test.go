package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentd187/golf-companion/internal/models"
)

func TestRangeSessionScenario(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	id := s.StartRangeSession("7-Iron")
	s.AddRangeShot(id, 140, 5)
	s.AddRangeShot(id, 150, 10)

	rs, ok := s.RangeSession(id)
	require.True(t, ok)
	require.Equal(t, "7-Iron", rs.Club)
	require.Equal(t, 2, rs.TotalShots)
	require.Equal(t, 145, rs.AverageDistance)
	require.Equal(t, 150, rs.BestDistance)
	require.Equal(t, 8, rs.Dispersion, "7.5 rounds half up")
}

func TestRangeAggregatesIgnoreShotOrder(t *testing.T) {
	t.Parallel()

	orders := [][]int{
		{120, 150, 140},
		{150, 120, 140},
		{140, 150, 120},
	}
	for _, distances := range orders {
		s := newTestStore(t)
		id := s.StartRangeSession("Driver")
		for _, d := range distances {
			s.AddRangeShot(id, d, 0)
		}
		rs, _ := s.RangeSession(id)
		assert.Equal(t, 137, rs.AverageDistance, "order %v", distances)
		assert.Equal(t, 150, rs.BestDistance, "order %v", distances)
	}
}

func TestRangeSessionsNewestFirst(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	first := s.StartRangeSession("Driver")
	second := s.StartRangeSession("PW")

	sessions := s.RangeSessions()
	require.Len(t, sessions, 2)
	require.Equal(t, second, sessions[0].ID)
	require.Equal(t, first, sessions[1].ID)
	require.Zero(t, sessions[0].TotalShots)
	require.NotNil(t, sessions[0].Shots)
}

func TestRangeUnknownSession(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	id := s.StartRangeSession("SW")

	s.AddRangeShot("missing", 80, 3)
	rs, _ := s.RangeSession(id)
	require.Zero(t, rs.TotalShots)

	require.False(t, s.EndRangeSession("missing"))
	require.True(t, s.EndRangeSession(id))
	rs, _ = s.RangeSession(id)
	require.True(t, rs.Ended)
}

func TestRoundHalfUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want int
	}{
		{136.67, 137},
		{7.5, 8},
		{7.49, 7},
		{0, 0},
		{-7.5, -7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundHalfUp(tt.in), "%v", tt.in)
	}
}

func TestUpdatePlayerStats(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	updated := s.UpdatePlayerStats(models.PlayerStatsPatch{
		DrivingDistance:  intp(260),
		AverageDistances: map[string]int{"7-Iron": 152},
	})
	require.Equal(t, 260, updated.DrivingDistance)
	require.Equal(t, 152, updated.AverageDistances["7-Iron"])
	require.Equal(t, 245, updated.AverageDistances["Driver"], "other clubs are kept")
	require.Equal(t, 12.5, updated.Handicap)
	require.Equal(t, updated, s.PlayerStats())
}

func TestAddSwingAnalysis(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	a := s.AddSwingAnalysis(models.SwingAnalysisInput{})
	require.Equal(t, "Unknown", a.Club)
	require.Zero(t, a.Score)
	require.NotNil(t, a.Improvements)
	require.Empty(t, a.Improvements)
	require.Equal(t, models.SwingMetrics{}, a.Metrics)
	require.Equal(t, fixedNow, a.Timestamp)

	club := "Driver"
	b := s.AddSwingAnalysis(models.SwingAnalysisInput{
		Club:         &club,
		Score:        intp(81),
		Improvements: []string{"Keep head steady"},
		Metrics:      &models.SwingMetrics{Impact: 80, Balance: 82, Rotation: 79},
	})

	all := s.SwingAnalyses()
	require.Len(t, all, 4)
	require.Equal(t, b.ID, all[0].ID, "newest first")
	require.Equal(t, a.ID, all[1].ID)
	require.Equal(t, 82, all[0].Metrics.Balance)
}

func TestAddHeatmapData(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	s.AddHeatmapData("Driver", models.HeatmapShot{X: 10, Y: 20, Result: models.HeatmapResultHit})
	s.AddHeatmapData("PW", models.HeatmapShot{X: 50, Y: 50, Result: models.HeatmapResultShort})
	s.AddHeatmapData("Driver", models.HeatmapShot{X: 80, Y: 30, Result: models.HeatmapResultMissRight})

	data := s.HeatmapData()
	require.Len(t, data, 2)
	require.Equal(t, "Driver", data[0].Club)
	require.Len(t, data[0].Shots, 2)
	require.Equal(t, models.HeatmapResultMissRight, data[0].Shots[1].Result)
	require.Equal(t, "PW", data[1].Club)
	require.Len(t, data[1].Shots, 1)
}

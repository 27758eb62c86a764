package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendClub(t *testing.T) {
	t.Parallel()

	tests := []struct {
		distance int
		want     string
	}{
		{300, "Driver"},
		{251, "Driver"},
		{250, "3-Wood"},
		{190, "5-Wood"},
		{150, "6-Iron"},
		{121, "7-Iron"},
		{85, "9-Iron"},
		{45, "SW"},
		{21, "LW"},
		{20, "Putter"},
		{0, "Putter"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RecommendClub(tt.distance), "distance %d", tt.distance)
	}
}

func TestRecommendations(t *testing.T) {
	t.Parallel()

	t.Run("weak swing is capped at three tips", func(t *testing.T) {
		m := Metrics{Impact: 60, Balance: 60, Rotation: 60, Tempo: 60, PlanePath: 60}
		tips := Recommendations(m, "Driver")
		require.Len(t, tips, 3)
		require.Equal(t, "Focus on striking the ball at impact", tips[0])
	})

	t.Run("strong swing with an iron", func(t *testing.T) {
		m := Metrics{Impact: 90, Balance: 90, Rotation: 90, Tempo: 80, PlanePath: 90}
		require.Equal(t, []string{"Focus on ball-first contact"}, Recommendations(m, "7-Iron"))
	})

	t.Run("strong swing with a putter still gets a tip", func(t *testing.T) {
		m := Metrics{Impact: 90, Balance: 90, Rotation: 90, Tempo: 80, PlanePath: 90}
		require.Equal(t, []string{"Great swing! Keep up the consistency"}, Recommendations(m, "Putter"))
	})
}

func TestGradeAndDescribe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A+", Grade(95))
	assert.Equal(t, "B", Grade(77))
	assert.Equal(t, "F", Grade(10))
	assert.Equal(t, "Excellent", Describe(90))
	assert.Equal(t, "Average", Describe(72))
	assert.Equal(t, "Needs Major Improvement", Describe(0))
}

func TestHandicap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Handicap(nil, nil))

	// One round of 85 on a par 72: (13 * 113 / 120) * 0.96 = 11.75..., rounds to 11.8.
	assert.Equal(t, 11.8, Handicap([]int{85}, nil))

	// Scores under par never produce a negative index.
	assert.Equal(t, 0.0, Handicap([]int{65, 66}, []int{72, 72}))
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	a := NewRandom(7).AnalyzeSwing("Driver")
	b := NewRandom(7).AnalyzeSwing("Driver")
	require.Equal(t, a, b)

	require.Equal(t, "Driver", a.Club)
	require.GreaterOrEqual(t, a.OverallScore, 50)
	require.LessOrEqual(t, a.OverallScore, 100)
	require.NotEmpty(t, a.Recommendations)
	require.LessOrEqual(t, len(a.Recommendations), 3)
	require.Equal(t, Grade(a.OverallScore), a.Grade)
}

func TestMockWeather(t *testing.T) {
	t.Parallel()

	w := MockWeather()
	assert.Equal(t, 72, w.Temperature)
	assert.Equal(t, "SW", w.WindDirection)
}

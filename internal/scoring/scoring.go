// Package scoring produces the companion's "AI" numbers: swing scores, swing
// tips, club recommendations, weather and handicaps. None of it is a real
// model. The Provider interface is the seam where a real swing analyser would
// plug in; Random is the stand-in used today, and tests inject their own.
package scoring

import (
	"math"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"github.com/trentd187/golf-companion/internal/models"
)

// Metrics is the full set of swing ratings, each 0–100.
type Metrics struct {
	Impact    int `json:"impact"`
	Balance   int `json:"balance"`
	Rotation  int `json:"rotation"`
	Tempo     int `json:"tempo"`
	PlanePath int `json:"plane_path"`
}

// Headline keeps the three metrics the app stores with each analysis.
func (m Metrics) Headline() models.SwingMetrics {
	return models.SwingMetrics{Impact: m.Impact, Balance: m.Balance, Rotation: m.Rotation}
}

// Result is one analysed swing.
type Result struct {
	Club            string   `json:"club"`
	OverallScore    int      `json:"overall_score"`
	Metrics         Metrics  `json:"metrics"`
	Recommendations []string `json:"recommendations"`
	Similarity      int      `json:"similarity"` // How close to a tour swing, 0–100
	Grade           string   `json:"grade"`
	Description     string   `json:"description"`
}

// Provider analyses a swing made with club.
type Provider interface {
	AnalyzeSwing(club string) Result
}

// Random scores swings with a random number generator. Safe for concurrent use.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom returns a Random seeded with seed. The same seed yields the same
// sequence of results.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// AnalyzeSwing draws a base score between 60 and 90 and jitters each metric
// around it. The overall score is the rounded mean of the five metrics.
func (r *Random) AnalyzeSwing(club string) Result {
	r.mu.Lock()
	base := r.rng.Float64()*30 + 60
	jitter := func(spread float64) int {
		return roundHalfUp(base + r.rng.Float64()*spread - spread/2)
	}
	m := Metrics{
		Impact:    jitter(10),
		Balance:   jitter(15),
		Rotation:  jitter(12),
		Tempo:     jitter(8),
		PlanePath: jitter(10),
	}
	similarityNoise := r.rng.Float64() * 20
	r.mu.Unlock()

	overall := roundHalfUp(float64(m.Impact+m.Balance+m.Rotation+m.Tempo+m.PlanePath) / 5)
	return Result{
		Club:            club,
		OverallScore:    overall,
		Metrics:         m,
		Recommendations: Recommendations(m, club),
		Similarity:      clamp(roundHalfUp(float64(overall)*0.8+similarityNoise), 0, 100),
		Grade:           Grade(overall),
		Description:     Describe(overall),
	}
}

// Recommendations turns metrics into at most three swing tips. There is always
// at least one.
func Recommendations(m Metrics, club string) []string {
	var tips []string
	if m.Impact < 75 {
		tips = append(tips, "Focus on striking the ball at impact")
	}
	if m.Balance < 70 {
		tips = append(tips, "Work on maintaining better balance throughout the swing")
	}
	if m.Rotation < 75 {
		tips = append(tips, "Improve hip and shoulder rotation")
	}
	switch {
	case m.Tempo > 85:
		tips = append(tips, "Slow down your tempo for better control")
	case m.Tempo < 65:
		tips = append(tips, "Increase your swing tempo slightly")
	}
	if m.PlanePath < 70 {
		tips = append(tips, "Work on your swing plane path")
	}

	switch {
	case club == "Driver":
		tips = append(tips, "Keep your head behind the ball at impact")
	case strings.Contains(club, "Iron"):
		tips = append(tips, "Focus on ball-first contact")
	case strings.Contains(club, "Wedge"):
		tips = append(tips, "Maintain consistent wrist angle")
	}

	if len(tips) == 0 {
		tips = append(tips, "Great swing! Keep up the consistency")
	}
	if len(tips) > 3 {
		tips = tips[:3]
	}
	return tips
}

// clubBands maps the minimum carry (exclusive) to the club that covers it.
var clubBands = []struct {
	over int
	club string
}{
	{250, "Driver"},
	{200, "3-Wood"},
	{180, "5-Wood"},
	{160, "5-Iron"},
	{140, "6-Iron"},
	{120, "7-Iron"},
	{100, "8-Iron"},
	{80, "9-Iron"},
	{60, "PW"},
	{40, "SW"},
	{20, "LW"},
}

// RecommendClub suggests a club for the distance to the pin, in yards.
func RecommendClub(distance int) string {
	for _, b := range clubBands {
		if distance > b.over {
			return b.club
		}
	}
	return "Putter"
}

// Grade converts a 0–100 score to a letter grade.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "B+"
	case score >= 75:
		return "B"
	case score >= 70:
		return "C+"
	case score >= 65:
		return "C"
	case score >= 60:
		return "D+"
	case score >= 55:
		return "D"
	default:
		return "F"
	}
}

// Describe puts a 0–100 score into words.
func Describe(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 85:
		return "Very Good"
	case score >= 80:
		return "Good"
	case score >= 75:
		return "Above Average"
	case score >= 70:
		return "Average"
	case score >= 65:
		return "Below Average"
	case score >= 60:
		return "Needs Work"
	case score >= 55:
		return "Poor"
	default:
		return "Needs Major Improvement"
	}
}

// Handicap estimates a handicap index from gross scores and the matching
// course pars (72 where no par is given). It averages the best 40% of score
// differentials, at most eight, and applies the 0.96 multiplier. The result is
// rounded to one decimal and never negative. No scores yields 0.
func Handicap(scores, pars []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	diffs := make([]float64, len(scores))
	for i, s := range scores {
		par := 72
		if i < len(pars) && pars[i] > 0 {
			par = pars[i]
		}
		diffs[i] = float64(s-par) * 113 / 120
	}
	sort.Float64s(diffs)

	n := int(math.Ceil(float64(len(diffs)) * 0.4))
	if n > 8 {
		n = 8
	}
	sum := 0.0
	for _, d := range diffs[:n] {
		sum += d
	}
	h := math.Round(sum/float64(n)*0.96*10) / 10
	return math.Max(0, h)
}

// MockWeather is the fixed conditions the app shows at every course.
func MockWeather() models.Weather {
	return models.Weather{Temperature: 72, WindSpeed: 8, WindDirection: "SW", Humidity: 65}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

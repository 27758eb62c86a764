// Package analysis runs the swing analysis "processing" step: after a short
// delay a swing is scored and the result is saved as a new analysis.
//
// Only the newest request counts. Starting a new analysis cancels the one still
// waiting, and an analysis that was already running when it was superseded
// finishes without saving, so a stale result can never overwrite a newer one.
package analysis

import (
	"log/slog"
	"sync"
	"time"

	"github.com/trentd187/golf-companion/internal/models"
	"github.com/trentd187/golf-companion/internal/schedule"
	"github.com/trentd187/golf-companion/internal/scoring"
)

// DefaultDelay is how long a simulated analysis takes.
const DefaultDelay = 3 * time.Second

// Sink stores finished analyses. *store.Store satisfies it.
type Sink interface {
	AddSwingAnalysis(in models.SwingAnalysisInput) models.SwingAnalysis
}

// Outcome is a finished analysis: the full scoring result and the record
// that was saved for it.
type Outcome struct {
	Result scoring.Result       `json:"result"`
	Saved  models.SwingAnalysis `json:"saved"`
}

// Runner schedules swing analyses.
type Runner struct {
	scorer scoring.Provider
	sink   Sink
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	gen     uint64 // bumped by every Start
	pending *schedule.Task
	latest  *Outcome
}

// NewRunner returns a Runner that scores with scorer and saves into sink.
// A non-positive delay uses DefaultDelay; a nil logger uses slog.Default.
func NewRunner(scorer scoring.Provider, sink Sink, delay time.Duration, logger *slog.Logger) *Runner {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{scorer: scorer, sink: sink, delay: delay, logger: logger}
}

// Start schedules an analysis of a swing made with club and returns its task.
// Any analysis still waiting to run is cancelled first.
func (r *Runner) Start(club string) *schedule.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending != nil && r.pending.Cancel() {
		r.logger.Info("swing analysis superseded")
	}

	r.gen++
	gen := r.gen
	task := schedule.After(r.delay, func() { r.finish(gen, club) })
	r.pending = task
	r.logger.Info("swing analysis started", "club", club, "delay", r.delay)
	return task
}

// finish scores the swing and saves it. gen identifies the Start call that
// scheduled it; a result from an older Start is dropped.
func (r *Runner) finish(gen uint64, club string) {
	// Scoring can be slow, so it runs without the lock.
	res := r.scorer.AnalyzeSwing(club)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.gen != gen {
		r.logger.Info("swing analysis result discarded", "club", club, "reason", "superseded")
		return
	}
	metrics := res.Metrics.Headline()
	saved := r.sink.AddSwingAnalysis(models.SwingAnalysisInput{
		Club:         &res.Club,
		Score:        &res.OverallScore,
		Improvements: res.Recommendations,
		Metrics:      &metrics,
	})
	r.latest = &Outcome{Result: res, Saved: saved}
	r.pending = nil

	r.logger.Info("swing analysis finished", "analysis_id", saved.ID, "club", club, "score", res.OverallScore)
}

// Latest returns the most recent finished analysis. ok is false before the
// first one completes.
func (r *Runner) Latest() (Outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.latest == nil {
		return Outcome{}, false
	}
	out := *r.latest
	out.Result.Recommendations = append([]string{}, out.Result.Recommendations...)
	out.Saved.Improvements = append([]string{}, out.Saved.Improvements...)
	return out, true
}

// Pending reports whether an analysis is waiting to run or running.
func (r *Runner) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending == nil {
		return false
	}
	switch r.pending.State() {
	case schedule.StatePending, schedule.StateRunning:
		return true
	default:
		return false
	}
}

// Stop cancels any analysis still waiting to run. One already running
// finishes without saving.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gen++
	if r.pending != nil {
		r.pending.Cancel()
		r.pending = nil
	}
}

// Package store is the application state store: the single owner of every
// piece of mutable state in the golf companion. Views read snapshots through
// the getters and change state only through the mutation methods.
//
// Rules every method follows:
//   - Mutations are synchronous. When a method returns, every later read sees
//     the change.
//   - One lock guards all state, so mutations never interleave and readers see
//     them in the order they happened.
//   - Getters return copies. Changing a returned value never changes the store.
//   - Unknown IDs and round operations without an active round are silent
//     no-ops, or return false where the caller needs to know.
//   - Each mutation records a change event while it holds the lock and
//     publishes it after releasing the lock, so subscribed views can refresh.
//     Events carry a sequence number taken under the lock and are published
//     in that order.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trentd187/golf-companion/internal/models"
)

// Change topics, one per slice of state.
const (
	TopicRound       = "round"
	TopicHistory     = "history"
	TopicRange       = "range"
	TopicStats       = "stats"
	TopicSocial      = "social"
	TopicTournaments = "tournaments"
	TopicChallenges  = "challenges"
	TopicSettings    = "settings"
	TopicSwing       = "swing"
	TopicHeatmap     = "heatmap"
	TopicFeedback    = "feedback"
)

// Notifier receives change events. *hub.Hub satisfies it.
type Notifier interface {
	Broadcast(topic string, data []byte)
}

// FeedbackSink records submitted feedback somewhere outside the store.
// *database.FeedbackRepository satisfies it.
type FeedbackSink interface {
	Save(ctx context.Context, fb models.Feedback) error
}

// Change is the payload published after a mutation.
type Change struct {
	Topic  string    `json:"topic"`
	Seq    uint64    `json:"seq"`          // Increases by one per change, in lock order
	Action string    `json:"action"`       // e.g. "round.started"
	ID     string    `json:"id,omitempty"` // ID of the record that changed, when there is one
	At     time.Time `json:"at"`
}

// Store owns all application state. Create it with New.
type Store struct {
	mu sync.RWMutex

	// Change events recorded under mu and not yet published. pubMu serialises
	// publishing so events leave in the order they were recorded.
	seq    uint64
	outbox []Change
	pubMu  sync.Mutex

	// Injected collaborators.
	now      func() time.Time
	newID    func() string
	joinCode func() string
	notifier Notifier
	feedback FeedbackSink
	logger   *slog.Logger

	// Users & social.
	currentUserID string
	users         []models.User
	friends       []models.Friend
	invitations   []models.GameInvitation
	tournaments   []models.Tournament

	// Playing & practice.
	playerStats   models.PlayerStats
	roundHistory  []models.Round
	currentRound  *models.CurrentRound
	currentHole   int
	rangeSessions []models.RangeSession
	swingAnalyses []models.SwingAnalysis
	heatmap       []models.HeatmapData
	challenges    []models.WeeklyChallenge
	achievements  []models.Achievement
	weather       models.Weather

	// Settings.
	voiceSettings      models.VoiceSettings
	smartwatchSettings models.SmartwatchSettings
	userSettings       models.UserSettings
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for every timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets how new record IDs are made. The default is a random UUID.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithJoinCodes sets how private tournament join codes are made.
func WithJoinCodes(gen func() string) Option {
	return func(s *Store) { s.joinCode = gen }
}

// WithNotifier sets where change events are published.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithFeedbackSink sets where submitted feedback is recorded.
func WithFeedbackSink(sink FeedbackSink) Option {
	return func(s *Store) { s.feedback = sink }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New returns a Store loaded with the seed data the app starts with.
func New(opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		newID:       uuid.NewString,
		joinCode:    randomJoinCode,
		logger:      slog.Default(),
		currentHole: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.seed()
	return s
}

// changedLocked records a change event on topic. Callers must hold s.mu for
// writing and release it with unlock, which publishes the event.
func (s *Store) changedLocked(topic, action, id string) {
	s.seq++
	s.outbox = append(s.outbox, Change{Topic: topic, Seq: s.seq, Action: action, ID: id, At: s.now()})
}

// unlock releases s.mu and publishes every recorded change.
func (s *Store) unlock() {
	s.mu.Unlock()
	s.flush()
}

// flush publishes recorded changes oldest first. It never runs with s.mu held,
// so a slow notifier can't stall readers.
func (s *Store) flush() {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	pending := s.outbox
	s.outbox = nil
	s.mu.Unlock()

	for _, c := range pending {
		s.logger.Debug("state changed", "topic", c.Topic, "action", c.Action, "id", c.ID, "seq", c.Seq)
		if s.notifier == nil {
			continue
		}
		data, err := json.Marshal(c)
		if err != nil {
			s.logger.Error("encode change event", "topic", c.Topic, "err", err)
			continue
		}
		s.notifier.Broadcast(c.Topic, data)
	}
}

// randomJoinCode makes a six-character upper-case code from a fresh UUID.
func randomJoinCode() string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	id := uuid.New()
	code := make([]byte, 6)
	for i := range code {
		code[i] = alphabet[int(id[i])%len(alphabet)]
	}
	return string(code)
}

// --- Snapshot helpers ---
// Every getter hands out deep copies built by these.

func cloneUser(u models.User) models.User {
	if u.Location != nil {
		loc := *u.Location
		u.Location = &loc
	}
	if u.Stats.SwingsAnalyzed != nil {
		n := *u.Stats.SwingsAnalyzed
		u.Stats.SwingsAnalyzed = &n
	}
	return u
}

func cloneIntMap(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneStats(p models.PlayerStats) models.PlayerStats {
	p.AverageDistances = cloneIntMap(p.AverageDistances)
	p.Accuracy = cloneIntMap(p.Accuracy)
	return p
}

func cloneHole(h models.Hole) models.Hole {
	h.Shots = append([]models.Shot{}, h.Shots...)
	return h
}

func cloneCurrentRound(r models.CurrentRound) models.CurrentRound {
	holes := make([]models.Hole, len(r.Holes))
	for i, h := range r.Holes {
		holes[i] = cloneHole(h)
	}
	r.Holes = holes
	return r
}

func cloneRangeSession(rs models.RangeSession) models.RangeSession {
	rs.Shots = append([]models.RangeShot{}, rs.Shots...)
	return rs
}

func cloneSwing(a models.SwingAnalysis) models.SwingAnalysis {
	a.Improvements = append([]string{}, a.Improvements...)
	return a
}

func cloneTournament(t models.Tournament) models.Tournament {
	if t.JoinCode != nil {
		code := *t.JoinCode
		t.JoinCode = &code
	}
	t.Players = cloneAll(t.Players, cloneUser)
	t.Scores = cloneIntMap(t.Scores)
	return t
}

func cloneFriend(f models.Friend) models.Friend {
	f.User = cloneUser(f.User)
	return f
}

func cloneInvitation(inv models.GameInvitation) models.GameInvitation {
	inv.From = cloneUser(inv.From)
	return inv
}

func cloneHeatmap(d models.HeatmapData) models.HeatmapData {
	d.Shots = append([]models.HeatmapShot{}, d.Shots...)
	return d
}

// cloneAll copies a slice element by element with fn.
func cloneAll[T any](in []T, fn func(T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func identity[T any](v T) T { return v }

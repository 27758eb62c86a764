// Package models defines the data structures the golf companion works with.
// Almost everything here lives only in memory, owned by the application state
// store (internal/store). The one exception is Feedback, which carries GORM tags
// because it can optionally be written to Postgres.
//
// The data model represents one golfer's companion app where:
//   - the current User has PlayerStats, a Round history and SwingAnalyses
//   - at most one CurrentRound is in progress, made of 18 Holes with Shots
//   - RangeSessions record practice shots for a single club
//   - Friends, GameInvitations and Tournaments form the social side
//
// JSON tags use snake_case to match the rest of the API.
package models

import (
	"time"

	"github.com/google/uuid"
)

// --- Enums ---
// Named string types plus constants give type safety while keeping the values
// readable in JSON payloads.

// LeaderboardCriteria picks the number a leaderboard ranks by.
type LeaderboardCriteria string

const (
	LeaderboardByScore    LeaderboardCriteria = "score"    // Average score, lowest first
	LeaderboardByDistance LeaderboardCriteria = "distance" // Driving distance, longest first
	LeaderboardByFairways LeaderboardCriteria = "fairways" // Fairways hit, highest first
)

// ParseLeaderboardCriteria accepts "score", "distance" or "fairways".
// An empty string means score.
func ParseLeaderboardCriteria(s string) (LeaderboardCriteria, bool) {
	switch c := LeaderboardCriteria(s); c {
	case "":
		return LeaderboardByScore, true
	case LeaderboardByScore, LeaderboardByDistance, LeaderboardByFairways:
		return c, true
	default:
		return "", false
	}
}

// FriendStatus tracks where a friend relationship stands.
type FriendStatus string

const (
	FriendStatusPending  FriendStatus = "pending"  // Request sent, not yet answered
	FriendStatusAccepted FriendStatus = "accepted" // Both sides are friends
	FriendStatusBlocked  FriendStatus = "blocked"
)

// InvitationStatus tracks the answer to a game invitation.
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
)

// ChallengeType says which part of the game a weekly challenge measures.
type ChallengeType string

const (
	ChallengeTypeFairways ChallengeType = "fairways"
	ChallengeTypeScore    ChallengeType = "score"
	ChallengeTypePutts    ChallengeType = "putts"
	ChallengeTypeRounds   ChallengeType = "rounds"
)

// HeatmapResult is the outcome category of a single heatmap sample.
type HeatmapResult string

const (
	HeatmapResultHit       HeatmapResult = "hit"
	HeatmapResultMissLeft  HeatmapResult = "miss-left"
	HeatmapResultMissRight HeatmapResult = "miss-right"
	HeatmapResultShort     HeatmapResult = "short"
	HeatmapResultLong      HeatmapResult = "long"
)

// Theme is the UI colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Units selects how distances are displayed.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// HoleCount is the number of holes in every round the companion tracks.
const HoleCount = 18

// StandardPars is the par of each hole, in hole order, used for every new round.
var StandardPars = [HoleCount]int{4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 5, 4, 4, 3, 4, 5, 4}

// Clubs lists the standard bag, longest club first.
var Clubs = []string{
	"Driver", "3-Wood", "5-Wood", "3-Iron", "4-Iron", "5-Iron",
	"6-Iron", "7-Iron", "8-Iron", "9-Iron", "PW", "SW", "LW", "Putter",
}

// --- Users & stats ---

// UserStats is the performance summary shown on a user's profile card.
type UserStats struct {
	AverageScore    float64 `json:"average_score"`
	BestScore       int     `json:"best_score"`
	RoundsPlayed    int     `json:"rounds_played"`
	DrivingDistance int     `json:"driving_distance"`
	DrivingAccuracy int     `json:"driving_accuracy"`
	FairwaysHit     int     `json:"fairways_hit"`              // Percent
	SwingsAnalyzed  *int    `json:"swings_analyzed,omitempty"` // Not every profile reports it
}

// User is a known golfer. The store seeds a fixed set of users at startup;
// users are edited but never deleted.
type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Username    string    `json:"username"`
	Avatar      string    `json:"avatar"`
	Handicap    float64   `json:"handicap"`
	Location    *string   `json:"location,omitempty"`
	JoinDate    time.Time `json:"join_date"`
	IsOnline    bool      `json:"is_online"`
	XPPoints    int       `json:"xp_points"`
	Stats       UserStats `json:"stats"`
}

// PlayerStats holds the current user's aggregate performance numbers.
// AverageDistances and Accuracy are keyed by club name.
type PlayerStats struct {
	Handicap          float64        `json:"handicap"`
	AverageScore      float64        `json:"average_score"`
	BestScore         int            `json:"best_score"`
	DrivingDistance   int            `json:"driving_distance"`
	DrivingAccuracy   int            `json:"driving_accuracy"`
	GreenInRegulation int            `json:"green_in_regulation"` // Percent of greens hit in regulation
	FairwaysHit       int            `json:"fairways_hit"`        // Percent
	PuttingAverage    float64        `json:"putting_average"`
	AverageDistances  map[string]int `json:"average_distances"`
	Accuracy          map[string]int `json:"accuracy"`
}

// --- Rounds ---

// Round is the immutable summary of a finished round.
type Round struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	CourseName string    `json:"course_name"`
	TotalScore int       `json:"total_score"`
	Holes      int       `json:"holes"`
	Handicap   float64   `json:"handicap"` // Handicap at the time the round was played
}

// Shot is one stroke recorded on a hole of the current round.
// X and Y are map coordinates normalised to 0..100.
type Shot struct {
	ID         string  `json:"id"`
	HoleNumber int     `json:"hole_number"`
	Club       string  `json:"club"`
	Distance   int     `json:"distance"`
	Accuracy   string  `json:"accuracy"` // e.g. "fairway", "rough", "green"
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// Hole is one hole of the round in progress.
type Hole struct {
	HoleNumber int    `json:"hole_number"` // 1–18
	Par        int    `json:"par"`
	Strokes    int    `json:"strokes"`
	Putts      int    `json:"putts"`
	Shots      []Shot `json:"shots"`
	Completed  bool   `json:"completed"`
}

// CurrentRound is the single round being played right now.
// Holes are always 18 entries ordered by hole number.
type CurrentRound struct {
	ID         string    `json:"id"`
	CourseName string    `json:"course_name"`
	StartTime  time.Time `json:"start_time"`
	Holes      []Hole    `json:"holes"`
	Completed  bool      `json:"completed"`
}

// TotalStrokes sums the strokes recorded on every hole.
func (r CurrentRound) TotalStrokes() int {
	total := 0
	for _, h := range r.Holes {
		total += h.Strokes
	}
	return total
}

// --- Practice & analysis ---

// SwingMetrics are the three headline swing ratings, each 0–100.
type SwingMetrics struct {
	Impact   int `json:"impact"`
	Balance  int `json:"balance"`
	Rotation int `json:"rotation"`
}

// SwingAnalysis is one analysed swing. Analyses are stored newest first.
type SwingAnalysis struct {
	ID           string       `json:"id"`
	Timestamp    time.Time    `json:"timestamp"`
	Club         string       `json:"club"`
	Score        int          `json:"score"` // 0–100
	Improvements []string     `json:"improvements"`
	Metrics      SwingMetrics `json:"metrics"`
}

// RangeShot is a single practice shot: how far it went and how far off line.
type RangeShot struct {
	Distance   int `json:"distance"`
	Dispersion int `json:"dispersion"`
}

// RangeSession is a practice session with one club. The aggregate fields are
// recomputed from Shots every time a shot is added.
type RangeSession struct {
	ID              string      `json:"id"`
	Club            string      `json:"club"`
	Date            time.Time   `json:"date"`
	TotalShots      int         `json:"total_shots"`
	AverageDistance int         `json:"average_distance"`
	BestDistance    int         `json:"best_distance"`
	Dispersion      int         `json:"dispersion"` // Average dispersion
	Shots           []RangeShot `json:"shots"`
	Ended           bool        `json:"ended"`
}

// HeatmapShot is one sample on the dispersion heatmap.
type HeatmapShot struct {
	X      float64       `json:"x"`
	Y      float64       `json:"y"`
	Result HeatmapResult `json:"result"`
}

// HeatmapData groups heatmap samples by club.
type HeatmapData struct {
	Club  string        `json:"club"`
	Shots []HeatmapShot `json:"shots"`
}

// WeeklyChallenge is a goal the player works towards during the week.
type WeeklyChallenge struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Target      int           `json:"target"`
	Current     int           `json:"current"`
	XPReward    int           `json:"xp_reward"`
	Completed   bool          `json:"completed"`
	Type        ChallengeType `json:"type"`
}

// Achievement is a badge the player has already unlocked.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	XPReward    int       `json:"xp_reward"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// Weather is the (mock) conditions at the course.
type Weather struct {
	Temperature   int    `json:"temperature"` // Fahrenheit
	WindSpeed     int    `json:"wind_speed"`  // mph
	WindDirection string `json:"wind_direction"`
	Humidity      int    `json:"humidity"` // Percent
}

// --- Social ---

// Friend wraps a known user with the state of the relationship.
type Friend struct {
	ID      string       `json:"id"`
	User    User         `json:"user"`
	Status  FriendStatus `json:"status"`
	AddedAt time.Time    `json:"added_at"`
}

// GameInvitation asks another player to join a round.
type GameInvitation struct {
	ID      string           `json:"id"`
	From    User             `json:"from"`
	To      string           `json:"to"` // Invited user's ID
	Course  string           `json:"course"`
	Date    time.Time        `json:"date"`
	Message string           `json:"message"`
	Status  InvitationStatus `json:"status"`
}

// Tournament is a friendly competition. Private tournaments carry a JoinCode
// that other players type in to join; public ones have none.
type Tournament struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Course    string         `json:"course"`
	Date      time.Time      `json:"date"`
	IsPublic  bool           `json:"is_public"`
	CreatedBy string         `json:"created_by"` // User ID of the creator
	JoinCode  *string        `json:"join_code,omitempty"`
	Players   []User         `json:"players"`
	Scores    map[string]int `json:"scores"` // Player ID -> score
	Completed bool           `json:"completed"`
}

// LeaderboardEntry is one player's place on a friends leaderboard.
// Value is the number the board was ranked by.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"` // 1 is the leader
	UserID        string  `json:"user_id"`
	DisplayName   string  `json:"display_name"`
	Username      string  `json:"username"`
	Avatar        string  `json:"avatar"`
	Handicap      float64 `json:"handicap"`
	Value         float64 `json:"value"`
	IsCurrentUser bool    `json:"is_current_user"`
}

// --- Settings ---

// VoiceSettings configures spoken swing feedback.
type VoiceSettings struct {
	FeedbackEnabled bool    `json:"feedback_enabled"`
	Volume          int     `json:"volume"` // 0–100
	VoiceSpeed      float64 `json:"voice_speed"`
}

// SmartwatchSettings configures the paired watch.
type SmartwatchSettings struct {
	Enabled         bool `json:"enabled"`
	ClubSuggestions bool `json:"club_suggestions"`
	SwingDetection  bool `json:"swing_detection"`
}

// UserSettings is the app-wide preference record.
type UserSettings struct {
	Theme                Theme  `json:"theme"`
	SoundEnabled         bool   `json:"sound_enabled"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	LocationEnabled      bool   `json:"location_enabled"`
	CameraEnabled        bool   `json:"camera_enabled"`
	MicEnabled           bool   `json:"mic_enabled"`
	AutoBackup           bool   `json:"auto_backup"`
	OfflineMode          bool   `json:"offline_mode"`
	BatteryOptimization  bool   `json:"battery_optimization"`
	Units                Units  `json:"units"`
	Language             string `json:"language"`
}

// --- Feedback ---

// Feedback is an in-app rating the player sends to the developers.
// It is the only model mapped to a database table (feedback), and only when
// a database is configured.
type Feedback struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Rating      int       `gorm:"not null" json:"rating"` // 1–5
	Comment     string    `gorm:"not null;default:''" json:"comment"`
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
}

// TableName pins the table name the migration creates.
func (Feedback) TableName() string { return "feedback" }

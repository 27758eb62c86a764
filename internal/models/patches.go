package models

import "time"

// --- Partial updates ---
// A patch names only the fields the caller wants to change. A nil pointer means
// "leave this field alone"; a non-nil pointer always wins, even when it points
// at a zero value. Each patch knows how to apply itself to a copy of its record.

// HolePatch changes any subset of a hole's score fields.
// Shots replaces the whole shot list when non-nil.
type HolePatch struct {
	Strokes   *int   `json:"strokes" validate:"omitempty,min=0"`
	Putts     *int   `json:"putts" validate:"omitempty,min=0"`
	Completed *bool  `json:"completed"`
	Shots     []Shot `json:"shots"`
}

// Apply returns h with the patch applied.
func (p HolePatch) Apply(h Hole) Hole {
	if p.Strokes != nil {
		h.Strokes = *p.Strokes
	}
	if p.Putts != nil {
		h.Putts = *p.Putts
	}
	if p.Completed != nil {
		h.Completed = *p.Completed
	}
	if p.Shots != nil {
		h.Shots = append([]Shot{}, p.Shots...)
	}
	return h
}

// PlayerStatsPatch changes any subset of the player's stats. The per-club maps
// are merged key by key, so patching one club leaves the others untouched.
type PlayerStatsPatch struct {
	Handicap          *float64       `json:"handicap"`
	AverageScore      *float64       `json:"average_score"`
	BestScore         *int           `json:"best_score"`
	DrivingDistance   *int           `json:"driving_distance"`
	DrivingAccuracy   *int           `json:"driving_accuracy"`
	GreenInRegulation *int           `json:"green_in_regulation"`
	FairwaysHit       *int           `json:"fairways_hit"`
	PuttingAverage    *float64       `json:"putting_average"`
	AverageDistances  map[string]int `json:"average_distances"`
	Accuracy          map[string]int `json:"accuracy"`
}

// Apply returns s with the patch applied. The maps of s are never modified in
// place; merged maps are fresh copies.
func (p PlayerStatsPatch) Apply(s PlayerStats) PlayerStats {
	if p.Handicap != nil {
		s.Handicap = *p.Handicap
	}
	if p.AverageScore != nil {
		s.AverageScore = *p.AverageScore
	}
	if p.BestScore != nil {
		s.BestScore = *p.BestScore
	}
	if p.DrivingDistance != nil {
		s.DrivingDistance = *p.DrivingDistance
	}
	if p.DrivingAccuracy != nil {
		s.DrivingAccuracy = *p.DrivingAccuracy
	}
	if p.GreenInRegulation != nil {
		s.GreenInRegulation = *p.GreenInRegulation
	}
	if p.FairwaysHit != nil {
		s.FairwaysHit = *p.FairwaysHit
	}
	if p.PuttingAverage != nil {
		s.PuttingAverage = *p.PuttingAverage
	}
	if p.AverageDistances != nil {
		s.AverageDistances = mergeClubs(s.AverageDistances, p.AverageDistances)
	}
	if p.Accuracy != nil {
		s.Accuracy = mergeClubs(s.Accuracy, p.Accuracy)
	}
	return s
}

func mergeClubs(base, updates map[string]int) map[string]int {
	out := make(map[string]int, len(base)+len(updates))
	for club, v := range base {
		out[club] = v
	}
	for club, v := range updates {
		out[club] = v
	}
	return out
}

// VoiceSettingsPatch changes any subset of the voice settings.
type VoiceSettingsPatch struct {
	FeedbackEnabled *bool    `json:"feedback_enabled"`
	Volume          *int     `json:"volume"`
	VoiceSpeed      *float64 `json:"voice_speed"`
}

// Apply returns v with the patch applied.
func (p VoiceSettingsPatch) Apply(v VoiceSettings) VoiceSettings {
	if p.FeedbackEnabled != nil {
		v.FeedbackEnabled = *p.FeedbackEnabled
	}
	if p.Volume != nil {
		v.Volume = *p.Volume
	}
	if p.VoiceSpeed != nil {
		v.VoiceSpeed = *p.VoiceSpeed
	}
	return v
}

// SmartwatchSettingsPatch changes any subset of the smartwatch settings.
type SmartwatchSettingsPatch struct {
	Enabled         *bool `json:"enabled"`
	ClubSuggestions *bool `json:"club_suggestions"`
	SwingDetection  *bool `json:"swing_detection"`
}

// Apply returns w with the patch applied.
func (p SmartwatchSettingsPatch) Apply(w SmartwatchSettings) SmartwatchSettings {
	if p.Enabled != nil {
		w.Enabled = *p.Enabled
	}
	if p.ClubSuggestions != nil {
		w.ClubSuggestions = *p.ClubSuggestions
	}
	if p.SwingDetection != nil {
		w.SwingDetection = *p.SwingDetection
	}
	return w
}

// UserSettingsPatch changes any subset of the user settings.
type UserSettingsPatch struct {
	Theme                *Theme  `json:"theme" validate:"omitempty,oneof=light dark"`
	SoundEnabled         *bool   `json:"sound_enabled"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	LocationEnabled      *bool   `json:"location_enabled"`
	CameraEnabled        *bool   `json:"camera_enabled"`
	MicEnabled           *bool   `json:"mic_enabled"`
	AutoBackup           *bool   `json:"auto_backup"`
	OfflineMode          *bool   `json:"offline_mode"`
	BatteryOptimization  *bool   `json:"battery_optimization"`
	Units                *Units  `json:"units" validate:"omitempty,oneof=metric imperial"`
	Language             *string `json:"language"`
}

// Apply returns u with the patch applied.
func (p UserSettingsPatch) Apply(u UserSettings) UserSettings {
	if p.Theme != nil {
		u.Theme = *p.Theme
	}
	setBool(&u.SoundEnabled, p.SoundEnabled)
	setBool(&u.NotificationsEnabled, p.NotificationsEnabled)
	setBool(&u.LocationEnabled, p.LocationEnabled)
	setBool(&u.CameraEnabled, p.CameraEnabled)
	setBool(&u.MicEnabled, p.MicEnabled)
	setBool(&u.AutoBackup, p.AutoBackup)
	setBool(&u.OfflineMode, p.OfflineMode)
	setBool(&u.BatteryOptimization, p.BatteryOptimization)
	if p.Units != nil {
		u.Units = *p.Units
	}
	if p.Language != nil {
		u.Language = *p.Language
	}
	return u
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// --- Creation inputs ---
// Inputs carry the caller-supplied part of a new record. The store fills in
// IDs, timestamps and defaults for anything left empty.

// ShotInput is a Shot without its ID.
type ShotInput struct {
	HoleNumber int     `json:"hole_number" validate:"min=1,max=18"`
	Club       string  `json:"club" validate:"required"`
	Distance   int     `json:"distance" validate:"min=0"`
	Accuracy   string  `json:"accuracy"`
	X          float64 `json:"x" validate:"min=0,max=100"`
	Y          float64 `json:"y" validate:"min=0,max=100"`
}

// SwingAnalysisInput is a partial SwingAnalysis. Missing fields default to
// club "Unknown", score 0, no improvements and zeroed metrics.
type SwingAnalysisInput struct {
	Club         *string       `json:"club"`
	Score        *int          `json:"score" validate:"omitempty,min=0,max=100"`
	Improvements []string      `json:"improvements"`
	Metrics      *SwingMetrics `json:"metrics"`
}

// RoundInput is a partial Round for adding a round played elsewhere.
type RoundInput struct {
	CourseName *string    `json:"course_name"`
	TotalScore *int       `json:"total_score" validate:"omitempty,min=0"`
	Holes      *int       `json:"holes" validate:"omitempty,min=1,max=18"`
	Handicap   *float64   `json:"handicap"`
	Date       *time.Time `json:"date"`
}

// TournamentInput is a partial Tournament. Private tournaments get a join code
// generated by the store.
type TournamentInput struct {
	Name      *string    `json:"name"`
	Course    *string    `json:"course"`
	Date      *time.Time `json:"date"`
	IsPublic  bool       `json:"is_public"`
	CreatedBy *string    `json:"created_by"`
}

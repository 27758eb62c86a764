package store

import (
	"time"

	"github.com/trentd187/golf-companion/internal/models"
	"github.com/trentd187/golf-companion/internal/scoring"
)

// seedUserID is the ID of the user the app runs as.
const seedUserID = "user1"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// seedUsers is the fixed directory of known golfers. The first one is the
// current user.
func seedUsers() []models.User {
	type row struct {
		id, name, username, location string
		handicap                     float64
		joined                       time.Time
		online                       bool
		xp                           int
		avg                          float64
		best, rounds, dist, acc, fw  int
		sw                           int
	}
	rows := []row{
		{"user1", "Alex Johnson", "alexgolf", "California, USA", 12.5, date(2023, time.January, 15), true, 2450, 84.2, 78, 47, 245, 68, 64, 125},
		{"friend1", "Sarah Wilson", "sarahgolf", "New York, USA", 8.2, date(2023, time.February, 10), false, 3200, 79.5, 72, 52, 220, 75, 71, 98},
		{"friend2", "Mike Chen", "mikeputts", "Texas, USA", 15.1, date(2023, time.March, 5), true, 1850, 88.7, 81, 33, 265, 62, 58, 67},
		{"user4", "Emma Rodriguez", "emmagolf", "Florida, USA", 6.8, date(2022, time.November, 20), true, 4100, 76.3, 69, 78, 195, 82, 79, 156},
		{"user5", "David Thompson", "davidt_golf", "Colorado, USA", 18.2, date(2023, time.April, 12), false, 1200, 92.1, 85, 25, 240, 58, 52, 45},
		{"user6", "Lisa Chang", "lisachang_pro", "California, USA", 3.4, date(2022, time.August, 3), true, 5800, 72.8, 67, 95, 210, 88, 85, 200},
	}

	users := make([]models.User, len(rows))
	for i, r := range rows {
		users[i] = models.User{
			ID:          r.id,
			DisplayName: r.name,
			Username:    r.username,
			Avatar:      "/avatars/" + r.id + ".jpg",
			Handicap:    r.handicap,
			Location:    ptr(r.location),
			JoinDate:    r.joined,
			IsOnline:    r.online,
			XPPoints:    r.xp,
			Stats: models.UserStats{
				AverageScore:    r.avg,
				BestScore:       r.best,
				RoundsPlayed:    r.rounds,
				DrivingDistance: r.dist,
				DrivingAccuracy: r.acc,
				FairwaysHit:     r.fw,
				SwingsAnalyzed:  ptr(r.sw),
			},
		}
	}
	return users
}

func seedPlayerStats() models.PlayerStats {
	return models.PlayerStats{
		Handicap:          12.5,
		AverageScore:      84.2,
		BestScore:         78,
		DrivingDistance:   245,
		DrivingAccuracy:   68,
		GreenInRegulation: 58,
		FairwaysHit:       64,
		PuttingAverage:    1.8,
		AverageDistances: map[string]int{
			"Driver": 245, "3-Wood": 215, "5-Wood": 195, "3-Iron": 175, "4-Iron": 165,
			"5-Iron": 160, "6-Iron": 150, "7-Iron": 145, "8-Iron": 135, "9-Iron": 125,
			"PW": 105, "SW": 85, "LW": 65, "Putter": 0,
		},
		Accuracy: map[string]int{
			"Driver": 68, "3-Wood": 72, "5-Wood": 75, "3-Iron": 70, "4-Iron": 72,
			"5-Iron": 75, "6-Iron": 78, "7-Iron": 82, "8-Iron": 85, "9-Iron": 85,
			"PW": 88, "SW": 90, "LW": 85, "Putter": 95,
		},
	}
}

// seed loads the state the app starts every session with.
func (s *Store) seed() {
	now := s.now()

	s.users = seedUsers()
	s.currentUserID = seedUserID
	me := s.users[0]

	s.playerStats = seedPlayerStats()

	s.roundHistory = []models.Round{
		{ID: "1", Date: date(2024, time.March, 15), CourseName: "Pebble Beach Golf Links", TotalScore: 78, Holes: 18, Handicap: 12.2},
		{ID: "2", Date: date(2024, time.March, 10), CourseName: "Augusta National", TotalScore: 82, Holes: 18, Handicap: 12.8},
		{ID: "3", Date: date(2024, time.March, 5), CourseName: "St. Andrews Old Course", TotalScore: 85, Holes: 18, Handicap: 13.1},
	}

	s.swingAnalyses = []models.SwingAnalysis{
		{
			ID: "1", Timestamp: now, Club: "7-Iron", Score: 85,
			Improvements: []string{"Work on hip rotation", "Maintain better balance"},
			Metrics:      models.SwingMetrics{Impact: 88, Balance: 82, Rotation: 85},
		},
		{
			ID: "2", Timestamp: now.Add(-24 * time.Hour), Club: "Driver", Score: 72,
			Improvements: []string{"Focus on tempo", "Keep head steady"},
			Metrics:      models.SwingMetrics{Impact: 75, Balance: 70, Rotation: 72},
		},
	}

	s.achievements = []models.Achievement{
		{ID: "1", Title: "First Birdie", Description: "Score your first birdie!", XPReward: 100, UnlockedAt: date(2024, time.March, 1)},
		{ID: "2", Title: "Swing Analyzer Pro", Description: "Complete 10 swing analyses", XPReward: 250, UnlockedAt: date(2024, time.March, 10)},
	}

	s.friends = []models.Friend{
		{ID: "1", User: cloneUser(s.users[1]), Status: models.FriendStatusAccepted, AddedAt: date(2024, time.February, 15)},
		{ID: "2", User: cloneUser(s.users[2]), Status: models.FriendStatusAccepted, AddedAt: date(2024, time.February, 20)},
		{ID: "3", User: cloneUser(s.users[3]), Status: models.FriendStatusAccepted, AddedAt: date(2024, time.March, 1)},
	}

	s.tournaments = []models.Tournament{
		{
			ID: "1", Name: "Spring Championship", Course: "Pebble Beach",
			Date: date(2024, time.April, 15), IsPublic: true, CreatedBy: me.ID,
			Players: []models.User{cloneUser(me)}, Scores: map[string]int{},
		},
	}

	s.challenges = []models.WeeklyChallenge{
		{ID: "1", Title: "Hit 5/7 fairways this week", Description: "Improve your driving accuracy", Target: 7, Current: 4, XPReward: 150, Type: models.ChallengeTypeFairways},
		{ID: "2", Title: "Play 3 rounds this week", Description: "Stay active on the course", Target: 3, Current: 1, XPReward: 200, Type: models.ChallengeTypeRounds},
	}

	s.weather = scoring.MockWeather()

	s.voiceSettings = models.VoiceSettings{FeedbackEnabled: true, Volume: 75, VoiceSpeed: 1.0}
	s.smartwatchSettings = models.SmartwatchSettings{}
	s.userSettings = DefaultUserSettings()
}

// DefaultUserSettings is the preference record every session starts with.
func DefaultUserSettings() models.UserSettings {
	return models.UserSettings{
		Theme:                models.ThemeDark,
		SoundEnabled:         true,
		NotificationsEnabled: true,
		LocationEnabled:      true,
		CameraEnabled:        true,
		MicEnabled:           true,
		AutoBackup:           true,
		OfflineMode:          false,
		BatteryOptimization:  true,
		Units:                models.UnitsImperial,
		Language:             "english",
	}
}

package navigation

import "strings"

// Screen identifiers shared by the navigation manager and every view.
const (
	ScreenHome                 = "home"
	ScreenAnalyzer             = "analyzer"
	ScreenCaddie               = "caddie"
	ScreenCoach                = "coach"
	ScreenStats                = "stats"
	ScreenProfile              = "profile"
	ScreenAddFriend            = "add-friend"
	ScreenFriendsLeaderboard   = "friends-leaderboard"
	ScreenSocialHub            = "social-hub"
	ScreenMessages             = "messages"
	ScreenVoiceAssistant       = "voice-assistant"
	ScreenRangeMode            = "range-mode"
	ScreenWeeklyChallenges     = "weekly-challenges"
	ScreenHeatmapVisualization = "heatmap-visualization"
	ScreenSmartwatchSettings   = "smartwatch-settings"
	ScreenTournamentMode       = "tournament-mode"
	ScreenFeedback             = "feedback"
	ScreenSettings             = "settings"
	ScreenRoundHistory         = "round-history"
)

// profilePrefix starts every per-user profile screen identifier.
const profilePrefix = "user-profile-"

// Screens lists every canonical screen in a stable order.
var Screens = []string{
	ScreenHome, ScreenAnalyzer, ScreenCaddie, ScreenCoach, ScreenStats, ScreenProfile,
	ScreenAddFriend, ScreenFriendsLeaderboard, ScreenSocialHub, ScreenMessages,
	ScreenVoiceAssistant, ScreenRangeMode, ScreenWeeklyChallenges, ScreenHeatmapVisualization,
	ScreenSmartwatchSettings, ScreenTournamentMode, ScreenFeedback, ScreenSettings,
	ScreenRoundHistory,
}

var canonical = func() map[string]bool {
	m := make(map[string]bool, len(Screens))
	for _, s := range Screens {
		m[s] = true
	}
	return m
}()

// Categories groups screens the way the app's menus do.
var Categories = map[string][]string{
	"main":        {ScreenHome, ScreenAnalyzer, ScreenCaddie, ScreenCoach},
	"social":      {ScreenSocialHub, ScreenAddFriend, ScreenFriendsLeaderboard, ScreenMessages},
	"practice":    {ScreenRangeMode, ScreenWeeklyChallenges},
	"analytics":   {ScreenStats, ScreenHeatmapVisualization, ScreenRoundHistory},
	"settings":    {ScreenProfile, ScreenSmartwatchSettings, ScreenSettings},
	"tournaments": {ScreenTournamentMode},
	"feedback":    {ScreenFeedback},
}

// IsCanonical reports whether screen is one of the fixed screens.
func IsCanonical(screen string) bool {
	return canonical[screen]
}

// ProfileScreen builds the screen identifier for userID's profile.
func ProfileScreen(userID string) string {
	return profilePrefix + userID
}

// IsProfileScreen reports whether screen is a per-user profile screen.
func IsProfileScreen(screen string) bool {
	return strings.HasPrefix(screen, profilePrefix)
}

// ExtractUserID returns the user ID embedded in a profile screen.
// ok is false when screen is not a profile screen.
func ExtractUserID(screen string) (userID string, ok bool) {
	return strings.CutPrefix(screen, profilePrefix)
}

// Resolve returns the screen a renderer should show for screen: canonical and
// profile screens show themselves, anything else falls back to home.
func Resolve(screen string) string {
	if IsCanonical(screen) || IsProfileScreen(screen) {
		return screen
	}
	return ScreenHome
}

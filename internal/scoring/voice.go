package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/trentd187/golf-companion/internal/models"
)

// Voice intents a spoken query can resolve to.
const (
	IntentDistance = "distance"
	IntentClub     = "club"
	IntentWeather  = "weather"
	IntentRecord   = "record"
	IntentStats    = "stats"
	IntentScore    = "score"
	IntentHelp     = "help"
	IntentUnknown  = "unknown"
)

// VoiceReply is the assistant's answer to one spoken query.
type VoiceReply struct {
	Intent   string `json:"intent"`
	Response string `json:"response"`
	Matched  bool   `json:"matched"`
}

// voiceRule answers queries containing any of its keywords.
type voiceRule struct {
	intent   string
	keywords []string
	respond  func(w models.Weather, stats models.PlayerStats) string
}

// voiceRules are tried in order; the first rule with a keyword in the query wins.
// "how far" has its own wording, so it sits in a rule of its own after the
// other distance keywords.
var voiceRules = []voiceRule{
	{IntentDistance, []string{"distance", "yardage", "range"}, func(w models.Weather, _ models.PlayerStats) string {
		return fmt.Sprintf("Based on current conditions, the pin is approximately 165 yards away. With %d mph %s wind, I recommend your 7-iron.", w.WindSpeed, w.WindDirection)
	}},
	{IntentDistance, []string{"how far"}, func(w models.Weather, _ models.PlayerStats) string {
		return fmt.Sprintf("The distance to the pin is 165 yards. Considering the %s wind at %d mph, you might want to club up.", w.WindDirection, w.WindSpeed)
	}},
	{IntentClub, []string{"club", "switch", "recommend"}, func(_ models.Weather, stats models.PlayerStats) string {
		carry := stats.AverageDistances["7-Iron"]
		if carry == 0 {
			carry = 145
		}
		return fmt.Sprintf("For this shot, I recommend your 7-iron. Your average distance is %d yards, which should be perfect with current conditions.", carry)
	}},
	{IntentWeather, []string{"weather", "wind", "conditions", "temperature"}, func(w models.Weather, _ models.PlayerStats) string {
		return fmt.Sprintf("Current conditions: %d°F with %d mph winds from the %s. Humidity is %d%%.", w.Temperature, w.WindSpeed, w.WindDirection, w.Humidity)
	}},
	{IntentRecord, []string{"record", "analyze swing"}, func(models.Weather, models.PlayerStats) string {
		return "Starting swing recording now. Make sure you're in position and ready to swing."
	}},
	{IntentStats, []string{"stats", "statistics", "performance", "handicap"}, func(_ models.Weather, stats models.PlayerStats) string {
		return fmt.Sprintf("Your current handicap is %s. Average score: %s. Best round: %d.",
			formatNumber(stats.Handicap), formatNumber(stats.AverageScore), stats.BestScore)
	}},
	{IntentScore, []string{"score", "scorecard"}, func(models.Weather, models.PlayerStats) string {
		return "You're currently 2 over par through 8 holes. Keep up the good work!"
	}},
	{IntentHelp, []string{"help", "commands", "what can you do"}, func(models.Weather, models.PlayerStats) string {
		return "I can help with distances, club recommendations, weather updates, swing recording, and statistics. Just ask me naturally!"
	}},
}

// notUnderstood is the reply when no keyword matches.
const notUnderstood = "I didn't understand that command. Try one of the suggested questions."

// VoiceSuggestions are example questions the assistant offers.
var VoiceSuggestions = []string{
	"How far to the pin?",
	"What club should I use?",
	"Check weather conditions",
	"Record my swing",
	"Show my stats",
	"What's my current score?",
}

// VoiceResponse answers a spoken query by keyword, ignoring case. Replies are
// filled in from the current weather and the player's stats. A query with no
// known keyword gets a "didn't understand" reply with Matched false.
func VoiceResponse(query string, w models.Weather, stats models.PlayerStats) VoiceReply {
	q := cases.Fold().String(query)
	for _, rule := range voiceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return VoiceReply{Intent: rule.intent, Response: rule.respond(w, stats), Matched: true}
			}
		}
	}
	return VoiceReply{Intent: IntentUnknown, Response: notUnderstood}
}

// formatNumber prints v with as many decimals as it needs (12.5, 78).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package usecase

import (
	"regexp"
	"strings"

	"github.com/trucklink/fleetcall/internal/pkg/models"
)

// Rule-based transcript mining. Every rule is independent: an unmatched
// rule leaves its field nil and never fails the extraction. Classification
// checks are case-insensitive; the location capture is anchored on a
// capitalized place name.
var (
	locationRegex = regexp.MustCompile(`(?i:near|around|close to)\s([A-Z][a-zA-Z\s]+)`)

	milesRegex = regexp.MustCompile(`(?i)about\s(\d+)\s*miles`)

	etaRegex = regexp.MustCompile(`(?i)(?:eta.*?|arrive.*?at|pickup.*?at)\s*([0-9]{1,2}[:\s]?[0-9]{2}\s*(?:am|pm)?)`)

	delayedRegex = regexp.MustCompile(`(?i)delay|late|behind schedule`)
	onTimeRegex  = regexp.MustCompile(`(?i)on time|right on schedule`)

	delayReasonRegex = regexp.MustCompile(`(?i)delay(?:ed)? (?:due to|because of)\s+(.*?)(?:\.|,|$)`)
	delayCauseRegex  = regexp.MustCompile(`(?i)\b(heavy traffic|road block|weather|accident|construction|police activity|detour|mechanical issue|closed road|jammed traffic)\b`)

	moodRegex = regexp.MustCompile(`(?i)(?:i'?m|i am|feeling)\s+(good|okay|fine|tired|bad|sick)`)

	callbackRegex = regexp.MustCompile(`(?i)call (?:me )?back (?:at|around)?\s*(\d{1,2}[:\s]?\d{2}\s*(?:am|pm)?)`)

	wantsTextRegex = regexp.MustCompile(`(?i)text you instead|can you text`)

	issueRegex   = regexp.MustCompile(`(?i)issue with\s+(.*?)(?:\.|,|$)`)
	weatherRegex = regexp.MustCompile(`(?i)weather is\s+(.*?)(?:\.|,|$)`)
	roadRegex    = regexp.MustCompile(`(?i)roads? are\s+(.*?)(?:\.|,|$)`)
)

// ExtractInsights mines a free-form call transcript for structured
// check-in facts. Captured values come back as spoken, whitespace-trimmed.
func (uc *DispatchUC) ExtractInsights(transcript string) *models.CallInsights {
	return ExtractInsights(transcript)
}

// ExtractInsights is the pure extraction rule set.
func ExtractInsights(transcript string) *models.CallInsights {
	insights := &models.CallInsights{OnTimeStatus: "Unknown"}
	text := strings.TrimSpace(transcript)
	if text == "" {
		return insights
	}

	insights.CurrentLocation = capture(locationRegex, text)
	insights.MilesRemaining = capture(milesRegex, text)
	insights.ETA = capture(etaRegex, text)

	// Delay indicators take priority over on-schedule phrases.
	if delayedRegex.MatchString(text) {
		insights.OnTimeStatus = "Delayed"
	} else if onTimeRegex.MatchString(text) {
		insights.OnTimeStatus = "On Time"
	}

	// Explicit "delayed due to X" wins; otherwise fall back to a fixed
	// vocabulary of common causes.
	insights.DelayReason = capture(delayReasonRegex, text)
	if insights.DelayReason == nil {
		insights.DelayReason = capture(delayCauseRegex, text)
	}

	insights.DriverMood = capture(moodRegex, text)
	insights.PreferredCallbackTime = capture(callbackRegex, text)
	insights.WantsTextInstead = wantsTextRegex.MatchString(text)
	insights.IssueReported = capture(issueRegex, text)
	insights.WeatherCondition = capture(weatherRegex, text)
	insights.RoadCondition = capture(roadRegex, text)

	return insights
}

func capture(re *regexp.Regexp, text string) *string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	value := strings.TrimSpace(m[1])
	return &value
}

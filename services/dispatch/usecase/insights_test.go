package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractInsights_TypicalCheckIn(t *testing.T) {
	transcript := "I'm about 40 miles out, feeling tired, delayed due to heavy traffic, can you text me instead"

	insights := ExtractInsights(transcript)

	require.NotNil(t, insights.MilesRemaining)
	assert.Equal(t, "40", *insights.MilesRemaining)

	require.NotNil(t, insights.DriverMood)
	assert.Equal(t, "tired", *insights.DriverMood)

	require.NotNil(t, insights.DelayReason)
	assert.Equal(t, "heavy traffic", *insights.DelayReason)

	assert.Equal(t, "Delayed", insights.OnTimeStatus)
	assert.True(t, insights.WantsTextInstead)
}

func TestExtractInsights_Deterministic(t *testing.T) {
	transcript := "I'm about 40 miles out, feeling tired, delayed due to heavy traffic, can you text me instead"

	first := ExtractInsights(transcript)
	second := ExtractInsights(transcript)

	assert.Equal(t, first, second)
}

func TestExtractInsights_OnTimeWithLocation(t *testing.T) {
	transcript := "Everything is right on schedule, I'm near Bakersfield. Should arrive at 3:30 pm."

	insights := ExtractInsights(transcript)

	assert.Equal(t, "On Time", insights.OnTimeStatus)

	require.NotNil(t, insights.CurrentLocation)
	assert.Equal(t, "Bakersfield", *insights.CurrentLocation)

	require.NotNil(t, insights.ETA)
	assert.Equal(t, "3:30 pm", *insights.ETA)

	assert.False(t, insights.WantsTextInstead)
	assert.Nil(t, insights.DelayReason)
}

func TestExtractInsights_LocationTriggers(t *testing.T) {
	t.Run("Close to", func(t *testing.T) {
		insights := ExtractInsights("We're close to Amarillo")

		require.NotNil(t, insights.CurrentLocation)
		assert.Equal(t, "Amarillo", *insights.CurrentLocation)
	})

	t.Run("Near", func(t *testing.T) {
		insights := ExtractInsights("The truck is near Flagstaff")

		require.NotNil(t, insights.CurrentLocation)
		assert.Equal(t, "Flagstaff", *insights.CurrentLocation)
	})

	t.Run("Around", func(t *testing.T) {
		insights := ExtractInsights("Somewhere around Tucson, not far now")

		require.NotNil(t, insights.CurrentLocation)
		assert.Equal(t, "Tucson", *insights.CurrentLocation)
	})
}

func TestExtractInsights_DelayReasonVocabularyFallback(t *testing.T) {
	insights := ExtractInsights("Stuck in heavy traffic right now")

	require.NotNil(t, insights.DelayReason)
	assert.Equal(t, "heavy traffic", *insights.DelayReason)
}

func TestExtractInsights_BareLateIsDelayed(t *testing.T) {
	insights := ExtractInsights("I might be late")

	assert.Equal(t, "Delayed", insights.OnTimeStatus)
}

func TestExtractInsights_IssueAndCallback(t *testing.T) {
	transcript := "There is an issue with the liftgate, call me back at 2:30 pm."

	insights := ExtractInsights(transcript)

	require.NotNil(t, insights.IssueReported)
	assert.Equal(t, "the liftgate", *insights.IssueReported)

	require.NotNil(t, insights.PreferredCallbackTime)
	assert.Equal(t, "2:30 pm", *insights.PreferredCallbackTime)
}

func TestExtractInsights_WeatherAndRoad(t *testing.T) {
	transcript := "The weather is snowing hard. Roads are icy and rough, running late because of that."

	insights := ExtractInsights(transcript)

	require.NotNil(t, insights.WeatherCondition)
	assert.Equal(t, "snowing hard", *insights.WeatherCondition)

	require.NotNil(t, insights.RoadCondition)
	assert.Equal(t, "icy and rough", *insights.RoadCondition)

	assert.Equal(t, "Delayed", insights.OnTimeStatus)

	// "weather" itself is in the cause vocabulary
	require.NotNil(t, insights.DelayReason)
	assert.Equal(t, "weather", *insights.DelayReason)
}

func TestExtractInsights_MilesRequiresAboutAndWholeNumber(t *testing.T) {
	t.Run("Whole number", func(t *testing.T) {
		insights := ExtractInsights("About 80 miles to go.")

		require.NotNil(t, insights.MilesRemaining)
		assert.Equal(t, "80", *insights.MilesRemaining)
	})

	t.Run("Decimal does not match", func(t *testing.T) {
		insights := ExtractInsights("About 12.5 miles to go.")

		assert.Nil(t, insights.MilesRemaining)
	})

	t.Run("No about anchor", func(t *testing.T) {
		insights := ExtractInsights("Only 80 miles to go.")

		assert.Nil(t, insights.MilesRemaining)
	})
}

func TestExtractInsights_EmptyAndUnmatched(t *testing.T) {
	t.Run("Empty transcript", func(t *testing.T) {
		insights := ExtractInsights("")

		assert.Equal(t, "Unknown", insights.OnTimeStatus)
		assert.Nil(t, insights.MilesRemaining)
		assert.Nil(t, insights.CurrentLocation)
		assert.False(t, insights.WantsTextInstead)
	})

	t.Run("Nothing matches", func(t *testing.T) {
		insights := ExtractInsights("Okay thanks, bye.")

		assert.Equal(t, "Unknown", insights.OnTimeStatus)
		assert.Nil(t, insights.DriverMood)
		assert.Nil(t, insights.DelayReason)
	})
}

func TestExtractInsights_UsecaseMethodDelegates(t *testing.T) {
	uc, _, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	insights := uc.ExtractInsights("I'm feeling good, everything is on time.")

	require.NotNil(t, insights.DriverMood)
	assert.Equal(t, "good", *insights.DriverMood)
	assert.Equal(t, "On Time", insights.OnTimeStatus)
}

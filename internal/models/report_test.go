package models_test

import (
	"regexp"
	"testing"

	"github.com/VanishSun/fittrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportLineMessage(t *testing.T) {
	line := models.ReportLine{
		TrainingType: "Running",
		Duration:     1,
		Distance:     9.75,
		MeanSpeed:    9.75,
		Calories:     699.75,
	}

	assert.Equal(t,
		"Training type: Running; Duration: 1.000 h.; Distance: 9.750 km; Avg. speed: 9.750 km/h; Calories burned: 699.750.",
		line.Message())
}

func TestNewReportLineSnapshotsWorkout(t *testing.T) {
	swim, err := models.NewSwimming(720, 1, 80, 25, 40)
	require.NoError(t, err)

	line := models.NewReportLine(swim)
	assert.Equal(t, swim.Name(), line.TrainingType)
	assert.Equal(t, swim.Duration(), line.Duration)
	assert.Equal(t, swim.Distance(), line.Distance)
	assert.Equal(t, swim.MeanSpeed(), line.MeanSpeed)
	assert.Equal(t, swim.Calories(), line.Calories)
}

func TestReportLineThreeDecimalPlaces(t *testing.T) {
	pattern := regexp.MustCompile(
		`^Training type: \w+; Duration: \d+\.\d{3} h\.; Distance: \d+\.\d{3} km; Avg\. speed: \d+\.\d{3} km/h; Calories burned: \d+\.\d{3}\.$`)

	swim, err := models.NewSwimming(720, 1, 80, 25, 40)
	require.NoError(t, err)
	assert.Regexp(t, pattern, models.NewReportLine(swim).Message())

	walk, err := models.NewSportsWalking(9000, 1, 75, 180)
	require.NoError(t, err)
	assert.Regexp(t, pattern, models.NewReportLine(walk).Message())
}

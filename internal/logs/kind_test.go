package logs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// every kind must keep its column list and its args extractor in sync,
// and log_id must be the first (key) column
func TestKinds_ColumnsMatchArgs(t *testing.T) {
	date := time.Now()

	assert.Len(t, FoodKind.Args(FoodLog{Date: date}), len(FoodKind.Columns))
	assert.Len(t, MoodKind.Args(MoodLog{Date: date}), len(MoodKind.Columns))
	assert.Len(t, SleepKind.Args(SleepLog{Date: date}), len(SleepKind.Columns))
	assert.Len(t, WorkoutKind.Args(WorkoutLog{Date: date}), len(WorkoutKind.Columns))
	assert.Len(t, HeartRateKind.Args(HeartRateLog{Date: date}), len(HeartRateKind.Columns))

	for _, columns := range [][]string{
		FoodKind.Columns, MoodKind.Columns, SleepKind.Columns,
		WorkoutKind.Columns, HeartRateKind.Columns,
	} {
		require.NotEmpty(t, columns)
		assert.Equal(t, "log_id", columns[0])
	}
}

func TestValidate(t *testing.T) {
	date := time.Date(2024, 11, 2, 9, 30, 0, 0, time.UTC)

	validWorkout := WorkoutLog{
		LogID: 1, UserID: 100, Date: date,
		ExerciseType: "Deadlift", Duration: 30, WeightUsed: 120,
	}
	assert.NoError(t, validWorkout.Validate())

	missingExercise := validWorkout
	missingExercise.ExerciseType = ""
	assert.Error(t, missingExercise.Validate())

	missingLogID := validWorkout
	missingLogID.LogID = 0
	assert.Error(t, missingLogID.Validate())

	missingUser := validWorkout
	missingUser.UserID = 0
	assert.Error(t, missingUser.Validate())

	missingDate := validWorkout
	missingDate.Date = time.Time{}
	assert.Error(t, missingDate.Validate())

	for _, mood := range []Mood{MoodHappy, MoodSad, MoodStressed, MoodOkay, MoodTired} {
		assert.NoError(t, MoodLog{LogID: 1, UserID: 100, Date: date, Mood: mood}.Validate())
	}
	assert.Error(t, MoodLog{LogID: 1, UserID: 100, Date: date, Mood: "Meh"}.Validate())

	assert.NoError(t, SleepLog{LogID: 1, UserID: 100, Date: date, SleepDuration: 7.5, SleepQuality: 8}.Validate())
	assert.NoError(t, HeartRateLog{LogID: 1, UserID: 100, Date: date, AvgHeartRate: 62}.Validate())
	assert.Error(t, FoodLog{LogID: 1, UserID: 100, Date: date, FoodID: 0, MealType: "Lunch"}.Validate())
	assert.Error(t, FoodLog{LogID: 1, UserID: 100, Date: date, FoodID: 3, MealType: ""}.Validate())
}

package logs

import "github.com/jackc/pgx/v5"

// Kind describes how one log kind maps onto its table: the column list
// (log_id first), how a record turns into insert arguments, and how a
// row scans back into a record. All five log kinds share the same CRUD
// shape, so the Store is written once and instantiated per kind.
type Kind[T Log] struct {
	Name    string
	Table   string
	Columns []string
	Args    func(rec T) []any
	Scan    func(rows pgx.Rows) (T, error)
}

var FoodKind = Kind[FoodLog]{
	Name:  "foodlog",
	Table: "food_log",
	Columns: []string{
		"log_id", "user_id", "date", "food_id",
		"calories", "meal_type", "protein", "carbs", "fats",
	},
	Args: func(l FoodLog) []any {
		return []any{
			l.LogID, l.UserID, l.Date, l.FoodID,
			l.Calories, l.MealType, l.Protein, l.Carbs, l.Fats,
		}
	},
	Scan: func(rows pgx.Rows) (FoodLog, error) {
		var l FoodLog
		err := rows.Scan(
			&l.LogID, &l.UserID, &l.Date, &l.FoodID,
			&l.Calories, &l.MealType, &l.Protein, &l.Carbs, &l.Fats,
		)
		return l, err
	},
}

var MoodKind = Kind[MoodLog]{
	Name:    "moodlog",
	Table:   "mood_log",
	Columns: []string{"log_id", "user_id", "date", "mood"},
	Args: func(l MoodLog) []any {
		return []any{l.LogID, l.UserID, l.Date, string(l.Mood)}
	},
	Scan: func(rows pgx.Rows) (MoodLog, error) {
		var l MoodLog
		var mood string
		err := rows.Scan(&l.LogID, &l.UserID, &l.Date, &mood)
		l.Mood = Mood(mood)
		return l, err
	},
}

var SleepKind = Kind[SleepLog]{
	Name:    "sleeplog",
	Table:   "sleep_log",
	Columns: []string{"log_id", "user_id", "date", "sleep_duration", "sleep_quality"},
	Args: func(l SleepLog) []any {
		return []any{l.LogID, l.UserID, l.Date, l.SleepDuration, l.SleepQuality}
	},
	Scan: func(rows pgx.Rows) (SleepLog, error) {
		var l SleepLog
		err := rows.Scan(&l.LogID, &l.UserID, &l.Date, &l.SleepDuration, &l.SleepQuality)
		return l, err
	},
}

var WorkoutKind = Kind[WorkoutLog]{
	Name:  "workoutlog",
	Table: "workout_log",
	Columns: []string{
		"log_id", "user_id", "date", "exercise_type", "duration",
		"calories_burned", "trainer_notes", "set_count", "reps_in_set", "weight_used",
	},
	Args: func(l WorkoutLog) []any {
		return []any{
			l.LogID, l.UserID, l.Date, l.ExerciseType, l.Duration,
			l.CaloriesBurned, l.TrainerNotes, l.Sets, l.Reps, l.WeightUsed,
		}
	},
	Scan: func(rows pgx.Rows) (WorkoutLog, error) {
		var l WorkoutLog
		err := rows.Scan(
			&l.LogID, &l.UserID, &l.Date, &l.ExerciseType, &l.Duration,
			&l.CaloriesBurned, &l.TrainerNotes, &l.Sets, &l.Reps, &l.WeightUsed,
		)
		return l, err
	},
}

var HeartRateKind = Kind[HeartRateLog]{
	Name:    "heartratelog",
	Table:   "heart_rate_log",
	Columns: []string{"log_id", "user_id", "date", "avg_heart_rate"},
	Args: func(l HeartRateLog) []any {
		return []any{l.LogID, l.UserID, l.Date, l.AvgHeartRate}
	},
	Scan: func(rows pgx.Rows) (HeartRateLog, error) {
		var l HeartRateLog
		err := rows.Scan(&l.LogID, &l.UserID, &l.Date, &l.AvgHeartRate)
		return l, err
	},
}

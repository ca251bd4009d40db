package logs

import (
	"errors"
	"fmt"
	"time"
)

// Log is implemented by every log kind stored by the Store.
type Log interface {
	ID() int
	Validate() error
}

type FoodLog struct {
	LogID    int       `json:"logId"`
	UserID   int       `json:"userId"`
	Date     time.Time `json:"date"`
	FoodID   int       `json:"foodId"`
	Calories int       `json:"calories"`
	MealType string    `json:"mealType"`
	Protein  int       `json:"protein"`
	Carbs    int       `json:"carbs"`
	Fats     int       `json:"fats"`
}

func (l FoodLog) ID() int { return l.LogID }

func (l FoodLog) Validate() error {
	if err := validateBase(l.LogID, l.UserID, l.Date); err != nil {
		return err
	}
	if l.FoodID <= 0 {
		return errors.New("foodId is required")
	}
	if l.MealType == "" {
		return errors.New("mealType is required")
	}
	return nil
}

type Mood string

const (
	MoodHappy    Mood = "Happy"
	MoodSad      Mood = "Sad"
	MoodStressed Mood = "Stressed"
	MoodOkay     Mood = "Okay"
	MoodTired    Mood = "Tired"
)

var validMoods = map[Mood]bool{
	MoodHappy:    true,
	MoodSad:      true,
	MoodStressed: true,
	MoodOkay:     true,
	MoodTired:    true,
}

type MoodLog struct {
	LogID  int       `json:"logId"`
	UserID int       `json:"userId"`
	Date   time.Time `json:"date"`
	Mood   Mood      `json:"mood"`
}

func (l MoodLog) ID() int { return l.LogID }

func (l MoodLog) Validate() error {
	if err := validateBase(l.LogID, l.UserID, l.Date); err != nil {
		return err
	}
	if !validMoods[l.Mood] {
		return fmt.Errorf("invalid mood: %q", l.Mood)
	}
	return nil
}

type SleepLog struct {
	LogID         int       `json:"logId"`
	UserID        int       `json:"userId"`
	Date          time.Time `json:"date"`
	SleepDuration float64   `json:"sleepDuration"` // hours
	SleepQuality  int       `json:"sleepQuality"`  // 1 to 10
}

func (l SleepLog) ID() int { return l.LogID }

func (l SleepLog) Validate() error {
	return validateBase(l.LogID, l.UserID, l.Date)
}

type WorkoutLog struct {
	LogID          int       `json:"logId"`
	UserID         int       `json:"userId"`
	Date           time.Time `json:"date"`
	ExerciseType   string    `json:"exerciseType"`
	Duration       int       `json:"duration"` // minutes
	CaloriesBurned int       `json:"caloriesBurned"`
	TrainerNotes   string    `json:"trainerNotes"`
	Sets           int       `json:"sets"`
	Reps           int       `json:"reps"`
	WeightUsed     float64   `json:"weightUsed"`
}

func (l WorkoutLog) ID() int { return l.LogID }

func (l WorkoutLog) Validate() error {
	if err := validateBase(l.LogID, l.UserID, l.Date); err != nil {
		return err
	}
	if l.ExerciseType == "" {
		return errors.New("exerciseType is required")
	}
	return nil
}

type HeartRateLog struct {
	LogID        int       `json:"logId"`
	UserID       int       `json:"userId"`
	Date         time.Time `json:"date"`
	AvgHeartRate int       `json:"avgHeartRate"`
}

func (l HeartRateLog) ID() int { return l.LogID }

func (l HeartRateLog) Validate() error {
	return validateBase(l.LogID, l.UserID, l.Date)
}

func validateBase(logID, userID int, date time.Time) error {
	if logID <= 0 {
		return errors.New("logId is required")
	}
	if userID <= 0 {
		return errors.New("userId is required")
	}
	if date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}

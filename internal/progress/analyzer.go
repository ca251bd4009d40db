package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/robmck/fitlife/internal/logs"
	"github.com/robmck/fitlife/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=progress_test

type workoutLogs interface {
	List(ctx context.Context, userID *int) ([]logs.WorkoutLog, error)
}

var ErrInvalidEstimateInput = errors.New("goal weight and reps must be positive")

// ExercisePR is the heaviest weight ever logged for one exercise type.
type ExercisePR struct {
	ExerciseType string  `json:"exerciseType"`
	PR           float64 `json:"pr"`
}

type ProgressionPoint struct {
	Date       time.Time `json:"date"`
	WeightUsed float64   `json:"weightUsed"`
}

const (
	prCacheKey        = "personal-records"
	prCacheTTLSeconds = 30
)

// Analyzer derives strength analytics from the workout log store,
// never mutating it.
type Analyzer struct {
	workouts workoutLogs
	cache    *freecache.Cache
}

func NewAnalyzer(workouts workoutLogs) *Analyzer {
	return &Analyzer{
		workouts: workouts,
		cache:    freecache.NewCache(512 * 1024),
	}
}

// PersonalRecords returns max(WeightUsed) per exercise type, across all
// users and workouts. The dashboard polls this, so results are briefly cached.
func (a *Analyzer) PersonalRecords(ctx context.Context) (_ []ExercisePR, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.personalRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cached, err := a.cache.Get([]byte(prCacheKey)); err == nil {
		var records []ExercisePR
		if err := json.Unmarshal(cached, &records); err == nil {
			return records, nil
		}
		log.Warnf("failed to unmarshal cached personal records: %s", err)
	}

	workouts, err := a.workouts.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	maxPerExercise := make(map[string]float64)
	for _, w := range workouts {
		if current, ok := maxPerExercise[w.ExerciseType]; !ok || w.WeightUsed > current {
			maxPerExercise[w.ExerciseType] = w.WeightUsed
		}
	}

	records := make([]ExercisePR, 0, len(maxPerExercise))
	for exerciseType, pr := range maxPerExercise {
		records = append(records, ExercisePR{
			ExerciseType: exerciseType,
			PR:           pr,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ExerciseType < records[j].ExerciseType
	})

	if recordsJson, err := json.Marshal(records); err == nil {
		if err := a.cache.Set([]byte(prCacheKey), recordsJson, prCacheTTLSeconds); err != nil {
			log.Warnf("failed to cache personal records: %s", err)
		}
	}

	return records, nil
}

// Progression returns the (date, weight) series for one exercise type,
// oldest first. No matching workouts is an empty series, not an error.
func (a *Analyzer) Progression(ctx context.Context, exerciseType string) (_ []ProgressionPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.progression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts, err := a.workouts.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	points := make([]ProgressionPoint, 0)
	for _, w := range workouts {
		if w.ExerciseType != exerciseType {
			continue
		}
		points = append(points, ProgressionPoint{
			Date:       w.Date,
			WeightUsed: w.WeightUsed,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points, nil
}

// EstimateWorkingWeight estimates the weight that should yield the given
// number of reps at failure, for a target single-rep max (inverse Epley):
//
//	target = goal / (1 + reps/30)
//
// rounded to 2 decimals. At reps=0 the formula degenerates to the goal
// weight itself, so non-positive reps are rejected.
func EstimateWorkingWeight(goalWeight float64, reps int) (float64, error) {
	if goalWeight <= 0 || reps <= 0 {
		return 0, ErrInvalidEstimateInput
	}
	target := goalWeight / (1 + float64(reps)/30.0)
	return math.Round(target*100) / 100, nil
}

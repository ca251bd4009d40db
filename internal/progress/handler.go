package progress

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/robmck/fitlife/internal/telemetry/tracing"
	"github.com/robmck/fitlife/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type analyzer interface {
	PersonalRecords(ctx context.Context) ([]ExercisePR, error)
	Progression(ctx context.Context, exerciseType string) ([]ProgressionPoint, error)
}

type PRCalcResponse struct {
	TargetWeightForReps float64 `json:"target_weight_for_reps"`
}

type Handler struct {
	analyzer analyzer
}

func NewHandler(analyzer analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

// SetupRoutes must run before the workout log CRUD routes are registered,
// otherwise /workoutlog/{id} swallows these paths.
func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workoutlog/pr", handler.HandlePersonalRecords).Methods("GET", "OPTIONS")
	router.HandleFunc("/workoutlog/progression", handler.HandleProgression).Methods("GET", "OPTIONS")
	router.HandleFunc("/workoutlog/prcalc", handler.HandlePRCalc).Methods("GET", "OPTIONS")
}

func (handler *Handler) HandlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.pr")
	defer span.End()

	records, err := handler.analyzer.PersonalRecords(ctx)
	if err != nil {
		log.Errorf("get personal records: %s", err)
		http.Error(w, "failed to get personal records", http.StatusInternalServerError)
		return
	}

	recordsJson, err := json.Marshal(records)
	if err != nil {
		log.Errorf("marshal personal records: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordsJson, http.StatusOK)
}

func (handler *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.progression")
	defer span.End()

	exerciseType := r.URL.Query().Get("exercise")
	if exerciseType == "" {
		pkg.WriteJSONError(w, "missing exercise parameter", http.StatusBadRequest)
		return
	}

	points, err := handler.analyzer.Progression(ctx, exerciseType)
	if err != nil {
		log.Errorf("get progression for %q: %s", exerciseType, err)
		http.Error(w, "failed to get progression", http.StatusInternalServerError)
		return
	}

	pointsJson, err := json.Marshal(points)
	if err != nil {
		log.Errorf("marshal progression points: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, pointsJson, http.StatusOK)
}

func (handler *Handler) HandlePRCalc(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.prcalc")
	defer span.End()

	goalWeight, err := strconv.ParseFloat(r.URL.Query().Get("goal"), 64)
	if err != nil {
		pkg.WriteJSONError(w, "goal weight NaN", http.StatusBadRequest)
		return
	}
	reps, err := strconv.Atoi(r.URL.Query().Get("reps"))
	if err != nil {
		pkg.WriteJSONError(w, "reps NaN", http.StatusBadRequest)
		return
	}

	target, err := EstimateWorkingWeight(goalWeight, reps)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	respJson, err := json.Marshal(PRCalcResponse{
		TargetWeightForReps: target,
	})
	if err != nil {
		log.Errorf("marshal prcalc response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

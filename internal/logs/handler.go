package logs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/robmck/fitlife/internal/telemetry/metrics"
	"github.com/robmck/fitlife/internal/telemetry/tracing"
	"github.com/robmck/fitlife/pkg"
)

type store[T Log] interface {
	List(ctx context.Context, userID *int) ([]T, error)
	Get(ctx context.Context, logID int) (*T, error)
	Create(ctx context.Context, rec T) error
	Update(ctx context.Context, logID int, rec T) error
	Delete(ctx context.Context, logID int) error
}

type DeleteLogResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateLogResponse struct {
	UpdatedID int `json:"updatedId"`
}

// Handler serves the CRUD surface of one log kind.
type Handler[T Log] struct {
	kindName string
	store    store[T]
	metrics  *metrics.Manager
}

func NewHandler[T Log](kindName string, store store[T], metricsManager *metrics.Manager) *Handler[T] {
	return &Handler[T]{
		kindName: kindName,
		store:    store,
		metrics:  metricsManager,
	}
}

func (handler *Handler[T]) SetupRoutes(router *mux.Router) {
	sr := router.PathPrefix("/" + handler.kindName).Subrouter()
	sr.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS")
	sr.HandleFunc("/", handler.HandleList).Methods("GET", "OPTIONS")
	sr.HandleFunc("", handler.HandleAdd).Methods("POST", "OPTIONS")
	sr.HandleFunc("/", handler.HandleAdd).Methods("POST", "OPTIONS")
	sr.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS")
	sr.HandleFunc("/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS")
	sr.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS")
}

func (handler *Handler[T]) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler."+handler.kindName+".list")
	defer span.End()

	var userID *int
	if userIDStr := r.URL.Query().Get("user_id"); userIDStr != "" {
		id, err := strconv.Atoi(userIDStr)
		if err != nil {
			http.Error(w, "error, user_id NaN", http.StatusBadRequest)
			return
		}
		userID = &id
	}

	entries, err := handler.store.List(ctx, userID)
	if err != nil {
		log.Errorf("list %s error: %s", handler.kindName, err)
		http.Error(w, "failed to list log entries", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal %s entries error: %s", handler.kindName, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entriesJson, http.StatusOK)
}

func (handler *Handler[T]) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler."+handler.kindName+".get")
	defer span.End()

	id, err := logIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := handler.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrLogNotFound) {
			http.Error(w, "log entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get %s %d: %s", handler.kindName, id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal %s entry: %s", handler.kindName, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusOK)
}

func (handler *Handler[T]) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler."+handler.kindName+".add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry T
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("new %s entry, unmarshal json params: %s", handler.kindName, err)
		http.Error(w, "add log entry failed", http.StatusBadRequest)
		return
	}

	if err := entry.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.store.Create(ctx, entry); err != nil {
		if errors.Is(err, ErrDuplicateLog) {
			log.Debugf("%s entry %d already exists", handler.kindName, entry.ID())
			http.Error(w, "log entry with that id already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add new %s entry [%d]: %s", handler.kindName, entry.ID(), err)
		http.Error(w, "error, failed to add new log entry", http.StatusInternalServerError)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterLogsCreated.With(
			prometheus.Labels{"kind": handler.kindName},
		).Inc()
	}

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal new %s entry: %s", handler.kindName, err)
		http.Error(w, "error, failed to add new log entry", http.StatusInternalServerError)
		return
	}

	log.Debugf("new %s entry added: %s", handler.kindName, entryJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusCreated)
}

func (handler *Handler[T]) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler."+handler.kindName+".update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	id, err := logIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var entry T
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("update %s entry, unmarshal json params: %s", handler.kindName, err)
		http.Error(w, "update log entry failed", http.StatusBadRequest)
		return
	}

	if err := entry.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.store.Update(ctx, id, entry); err != nil {
		if errors.Is(err, ErrLogNotFound) {
			log.Debugf("%s entry %d not found", handler.kindName, id)
			http.Error(w, "log entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update %s entry [%d]: %s", handler.kindName, id, err)
		http.Error(w, "error, failed to update log entry", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateLogResponse{
		UpdatedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler[T]) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler."+handler.kindName+".delete")
	defer span.End()

	id, err := logIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrLogNotFound) {
			log.Debugf("%s entry %d not found", handler.kindName, id)
			http.Error(w, "log entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete %s entry %d: %s", handler.kindName, id, err)
		http.Error(w, "log entry not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteLogResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func logIDFromRequest(r *http.Request) (int, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, errors.New("error, id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("error, id NaN")
	}
	return id, nil
}

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/robmck/fitlife/internal/telemetry/tracing"
	"github.com/robmck/fitlife/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=admin_test

type repo interface {
	ListUsers(ctx context.Context) ([]User, error)
	AddUser(ctx context.Context, email, name string) (*User, error)
	RemoveUser(ctx context.Context, email string) error
	UpdateUser(ctx context.Context, req UpdateUserRequest) (emailRows, nameRows int64, err error)
	ListFoodItems(ctx context.Context) ([]FoodItem, error)
	AddFoodItem(ctx context.Context, item FoodItem) error
	ListSupportTickets(ctx context.Context) ([]SupportTicket, error)
	UpdateSupportTicket(ctx context.Context, ticketID int, status string) error
	ListTicketAssignments(ctx context.Context) ([]TicketAssignment, error)
	AssignEmployeeTicket(ctx context.Context, ticketID, employeeID int) error
}

type UpdateUserResponse struct {
	UpdatedEmails int64 `json:"updatedEmails"`
	UpdatedNames  int64 `json:"updatedNames"`
}

type RemoveUserResponse struct {
	RemovedEmail string `json:"removedEmail"`
}

type UpdateTicketResponse struct {
	UpdatedID int `json:"updatedId"`
}

type Handler struct {
	repo repo
}

func NewHandler(repo repo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	sr := router.PathPrefix("/admin").Subrouter()
	sr.HandleFunc("/users", handler.HandleListUsers).Methods("GET", "OPTIONS")
	sr.HandleFunc("/users", handler.HandleAddUser).Methods("POST", "OPTIONS")
	sr.HandleFunc("/users", handler.HandleUpdateUser).Methods("PUT", "OPTIONS")
	sr.HandleFunc("/users", handler.HandleRemoveUser).Methods("DELETE", "OPTIONS")
	sr.HandleFunc("/food_list", handler.HandleListFoodItems).Methods("GET", "OPTIONS")
	sr.HandleFunc("/food_list", handler.HandleAddFoodItem).Methods("POST", "OPTIONS")
	sr.HandleFunc("/support_tix", handler.HandleListSupportTickets).Methods("GET", "OPTIONS")
	sr.HandleFunc("/support_tix", handler.HandleUpdateSupportTicket).Methods("PUT", "OPTIONS")
	sr.HandleFunc("/employee_tix", handler.HandleListTicketAssignments).Methods("GET", "OPTIONS")
	sr.HandleFunc("/employee_tix", handler.HandleAssignEmployeeTicket).Methods("POST", "OPTIONS")
}

func (handler *Handler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.listUsers")
	defer span.End()

	users, err := handler.repo.ListUsers(ctx)
	if err != nil {
		log.Errorf("list users: %s", err)
		http.Error(w, "failed to list users", http.StatusInternalServerError)
		return
	}
	writeJson(w, users)
}

func (handler *Handler) HandleAddUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.addUser")
	defer span.End()

	var req AddUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add user, unmarshal json params: %s", err)
		http.Error(w, "add user failed", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Name == "" {
		http.Error(w, "error, email and name required", http.StatusBadRequest)
		return
	}

	user, err := handler.repo.AddUser(ctx, req.Email, req.Name)
	if err != nil {
		log.Errorf("add user [%s]: %s", req.Email, err)
		http.Error(w, "error, failed to add user", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user added: %d [%s]", user.UserID, user.Email)
	writeJson(w, user)
}

func (handler *Handler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.updateUser")
	defer span.End()

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update user, unmarshal json params: %s", err)
		http.Error(w, "update user failed", http.StatusBadRequest)
		return
	}

	emailRows, nameRows, err := handler.repo.UpdateUser(ctx, req)
	if err != nil {
		log.Errorf("update user: %s", err)
		http.Error(w, "error, failed to update user", http.StatusInternalServerError)
		return
	}

	writeJson(w, UpdateUserResponse{
		UpdatedEmails: emailRows,
		UpdatedNames:  nameRows,
	})
}

func (handler *Handler) HandleRemoveUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.removeUser")
	defer span.End()

	var req RemoveUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("remove user, unmarshal json params: %s", err)
		http.Error(w, "remove user failed", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "error, email required", http.StatusBadRequest)
		return
	}

	if err := handler.repo.RemoveUser(ctx, req.Email); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("remove user [%s]: %s", req.Email, err)
		http.Error(w, "error, failed to remove user", http.StatusInternalServerError)
		return
	}

	log.Debugf("user removed: %s", req.Email)
	writeJson(w, RemoveUserResponse{
		RemovedEmail: req.Email,
	})
}

func (handler *Handler) HandleListFoodItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.listFoodItems")
	defer span.End()

	items, err := handler.repo.ListFoodItems(ctx)
	if err != nil {
		log.Errorf("list food items: %s", err)
		http.Error(w, "failed to list food items", http.StatusInternalServerError)
		return
	}
	writeJson(w, items)
}

func (handler *Handler) HandleAddFoodItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.addFoodItem")
	defer span.End()

	var item FoodItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Tracef("add food item, unmarshal json params: %s", err)
		http.Error(w, "add food item failed", http.StatusBadRequest)
		return
	}
	if item.FoodID <= 0 || item.FoodName == "" {
		http.Error(w, "error, food id and name required", http.StatusBadRequest)
		return
	}

	if err := handler.repo.AddFoodItem(ctx, item); err != nil {
		if errors.Is(err, ErrDuplicateFoodItem) {
			http.Error(w, "food item with that id already exists", http.StatusConflict)
			return
		}
		log.Errorf("add food item [%d]: %s", item.FoodID, err)
		http.Error(w, "error, failed to add food item", http.StatusInternalServerError)
		return
	}

	log.Debugf("new food item added: %d [%s]", item.FoodID, item.FoodName)
	writeJson(w, item)
}

func (handler *Handler) HandleListSupportTickets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.listSupportTickets")
	defer span.End()

	tickets, err := handler.repo.ListSupportTickets(ctx)
	if err != nil {
		log.Errorf("list support tickets: %s", err)
		http.Error(w, "failed to list support tickets", http.StatusInternalServerError)
		return
	}
	writeJson(w, tickets)
}

func (handler *Handler) HandleUpdateSupportTicket(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.updateSupportTicket")
	defer span.End()

	var req UpdateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update support ticket, unmarshal json params: %s", err)
		http.Error(w, "update support ticket failed", http.StatusBadRequest)
		return
	}
	if req.TicketID <= 0 || req.Status == "" {
		http.Error(w, "error, ticket id and status required", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateSupportTicket(ctx, req.TicketID, req.Status); err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			http.Error(w, "support ticket not found", http.StatusNotFound)
			return
		}
		log.Errorf("update support ticket [%d]: %s", req.TicketID, err)
		http.Error(w, "error, failed to update support ticket", http.StatusInternalServerError)
		return
	}

	writeJson(w, UpdateTicketResponse{
		UpdatedID: req.TicketID,
	})
}

func (handler *Handler) HandleListTicketAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.listTicketAssignments")
	defer span.End()

	assignments, err := handler.repo.ListTicketAssignments(ctx)
	if err != nil {
		log.Errorf("list ticket assignments: %s", err)
		http.Error(w, "failed to list ticket assignments", http.StatusInternalServerError)
		return
	}
	writeJson(w, assignments)
}

func (handler *Handler) HandleAssignEmployeeTicket(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.assignEmployeeTicket")
	defer span.End()

	var assignment TicketAssignment
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		log.Tracef("assign employee ticket, unmarshal json params: %s", err)
		http.Error(w, "assign employee ticket failed", http.StatusBadRequest)
		return
	}
	if assignment.TicketID <= 0 || assignment.EmployeeID <= 0 {
		http.Error(w, "error, ticket id and employee id required", http.StatusBadRequest)
		return
	}

	if err := handler.repo.AssignEmployeeTicket(ctx, assignment.TicketID, assignment.EmployeeID); err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			http.Error(w, "support ticket not found", http.StatusNotFound)
			return
		}
		log.Errorf("assign employee %d to ticket %d: %s", assignment.EmployeeID, assignment.TicketID, err)
		http.Error(w, "error, failed to assign employee ticket", http.StatusInternalServerError)
		return
	}

	log.Debugf("employee %d assigned to ticket %d", assignment.EmployeeID, assignment.TicketID)
	writeJson(w, assignment)
}

func writeJson(w http.ResponseWriter, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

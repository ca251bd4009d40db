package admin

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrTicketNotFound    = errors.New("support ticket not found")
	ErrDuplicateFoodItem = errors.New("food item with that id already exists")
)

type User struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type FoodItem struct {
	FoodID   int    `json:"foodId"`
	FoodName string `json:"foodName"`
	Calories int    `json:"calories"`
}

type SupportTicket struct {
	TicketID int    `json:"ticketId"`
	UserID   int    `json:"userId"`
	Subject  string `json:"subject"`
	Status   string `json:"status"`
}

// TicketAssignment links a support ticket to an employee working on it.
// A ticket can be assigned to multiple employees.
type TicketAssignment struct {
	TicketID   int `json:"ticketId"`
	EmployeeID int `json:"employeeId"`
}

type AddUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UpdateUserRequest carries two independent rename branches. The email
// branch runs when both Email and NewEmail are set, the name branch when
// both Name and NewName are set. The name branch matches by current name
// and may touch multiple rows.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	NewEmail *string `json:"newEmail"`
	Name     *string `json:"name"`
	NewName  *string `json:"newName"`
}

type RemoveUserRequest struct {
	Email string `json:"email"`
}

type UpdateTicketRequest struct {
	TicketID int    `json:"ticketId"`
	Status   string `json:"status"`
}

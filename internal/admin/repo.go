package admin

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/robmck/fitlife/internal/telemetry/tracing"
	"github.com/robmck/fitlife/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListUsers(ctx context.Context) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.listUsers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT user_id, email, name FROM users ORDER BY user_id;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2users(rows)
}

// AddUser inserts a new user and returns it with the generated id.
func (r *Repo) AddUser(ctx context.Context, email, name string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.addUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var userID int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO users (email, name) VALUES ($1, $2) RETURNING user_id;`,
		email, name,
	).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &User{
		UserID: userID,
		Email:  email,
		Name:   name,
	}, nil
}

// RemoveUser deletes by email. The user's logs are left in place and
// become orphaned.
func (r *Repo) RemoveUser(ctx context.Context, email string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.removeUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE email = $1;`, email)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateUser runs up to two independent updates. The email branch matches
// a single user by current email; the name branch matches by current name
// and updates every user sharing it. Returns the rows touched per branch.
func (r *Repo) UpdateUser(ctx context.Context, req UpdateUserRequest) (emailRows, nameRows int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.updateUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if req.Email != nil && req.NewEmail != nil {
		tag, err := r.db.Exec(
			ctx,
			`UPDATE users SET email = $1 WHERE email = $2;`,
			*req.NewEmail, *req.Email,
		)
		if err != nil {
			return 0, 0, fmt.Errorf("update email: %w", err)
		}
		emailRows = tag.RowsAffected()
	}

	if req.Name != nil && req.NewName != nil {
		tag, err := r.db.Exec(
			ctx,
			`UPDATE users SET name = $1 WHERE name = $2;`,
			*req.NewName, *req.Name,
		)
		if err != nil {
			return emailRows, 0, fmt.Errorf("update name: %w", err)
		}
		nameRows = tag.RowsAffected()
	}

	span.SetAttributes(
		attribute.Int64("email_rows", emailRows),
		attribute.Int64("name_rows", nameRows),
	)

	return emailRows, nameRows, nil
}

func (r *Repo) ListFoodItems(ctx context.Context) (_ []FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.listFoodItems")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT food_id, food_name, calories FROM food_items ORDER BY food_id;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2foodItems(rows)
}

func (r *Repo) AddFoodItem(ctx context.Context, item FoodItem) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.addFoodItem")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("food_id", item.FoodID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO food_items (food_id, food_name, calories) VALUES ($1, $2, $3);`,
		item.FoodID, item.FoodName, item.Calories,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrDuplicateFoodItem
		}
		return fmt.Errorf("insert food item: %w", err)
	}
	return nil
}

func (r *Repo) ListSupportTickets(ctx context.Context) (_ []SupportTicket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.listSupportTickets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT ticket_id, user_id, subject, status FROM support_tickets ORDER BY ticket_id;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2tickets(rows)
}

func (r *Repo) UpdateSupportTicket(ctx context.Context, ticketID int, status string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.updateSupportTicket")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ticket_id", ticketID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE support_tickets SET status = $1 WHERE ticket_id = $2;`,
		status, ticketID,
	)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTicketNotFound
	}
	return nil
}

func (r *Repo) ListTicketAssignments(ctx context.Context) (_ []TicketAssignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.listTicketAssignments")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT ticket_id, employee_id FROM ticket_employees ORDER BY ticket_id, employee_id;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2assignments(rows)
}

// AssignEmployeeTicket appends an assignment row. Assigning the same
// ticket twice is allowed, each call adds a row.
func (r *Repo) AssignEmployeeTicket(ctx context.Context, ticketID, employeeID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.assignEmployeeTicket")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("ticket_id", ticketID),
		attribute.Int("employee_id", employeeID),
	)

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO ticket_employees (ticket_id, employee_id) VALUES ($1, $2);`,
		ticketID, employeeID,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrTicketNotFound
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

func rows2users(rows pgx.Rows) ([]User, error) {
	users := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.UserID, &u.Email, &u.Name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return users, nil
}

func rows2foodItems(rows pgx.Rows) ([]FoodItem, error) {
	items := make([]FoodItem, 0)
	for rows.Next() {
		var fi FoodItem
		if err := rows.Scan(&fi.FoodID, &fi.FoodName, &fi.Calories); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		items = append(items, fi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return items, nil
}

func rows2tickets(rows pgx.Rows) ([]SupportTicket, error) {
	tickets := make([]SupportTicket, 0)
	for rows.Next() {
		var ticket SupportTicket
		if err := rows.Scan(&ticket.TicketID, &ticket.UserID, &ticket.Subject, &ticket.Status); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return tickets, nil
}

func rows2assignments(rows pgx.Rows) ([]TicketAssignment, error) {
	assignments := make([]TicketAssignment, 0)
	for rows.Next() {
		var a TicketAssignment
		if err := rows.Scan(&a.TicketID, &a.EmployeeID); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return assignments, nil
}

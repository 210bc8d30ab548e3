// File: internal/service/user.go
package service

import (
	"context"
	"errors"

	"project-hub/internal/api"
	"project-hub/internal/database"
	"project-hub/internal/model"
	"project-hub/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	storeCreateUser = store.CreateUser
	storeGetUser    = store.GetUserByID
	storeListUsers  = store.ListUsers
	storeCountUsers = store.CountUsers
	storeUpdateUser = store.UpdateUser
	storeDeleteUser = store.DeleteUser
)

func emailConflict() *ConflictError {
	return &ConflictError{
		Message: "a user with this email already exists",
		Details: []api.FieldError{{
			Field:   "email",
			Message: "email address is already in use",
			Code:    "email_exists",
		}},
	}
}

// CreateUser inserts the user and lets the unique constraint arbitrate email
// collisions.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	created, err := storeCreateUser(ctx, db, u)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, emailConflict()
		}
		return nil, err
	}
	return created, nil
}

func GetUser(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	u, err := storeGetUser(ctx, db, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewNotFound("user", userID)
		}
		return nil, err
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB, skip, limit int) ([]model.User, int, error) {
	users, err := storeListUsers(ctx, db, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := storeCountUsers(ctx, db)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func UpdateUser(ctx context.Context, db database.DB, userID int, name, email *string, age *int) (*model.User, error) {
	u, err := storeUpdateUser(ctx, db, userID, name, email, age)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, NewNotFound("user", userID)
		case isUniqueViolation(err):
			return nil, emailConflict()
		}
		return nil, err
	}
	return u, nil
}

func DeleteUser(ctx context.Context, db database.DB, userID int) error {
	affected, err := storeDeleteUser(ctx, db, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return NewNotFound("user", userID)
	}
	return nil
}

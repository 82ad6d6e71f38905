package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("Jane Doe", "jane@example.com", "secret123", RoleCustomer)
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", user.Password)

	found, err := svc.GetUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", found.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("Jane Doe", "jane@example.com", "secret123", RoleCustomer)
	assert.NoError(t, err)

	_, err = svc.Register("Other Jane", "jane@example.com", "secret456", RoleCustomer)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("Jane Doe", "jane@example.com", "secret123", RoleCustomer)
	assert.NoError(t, err)

	user, err := svc.Authenticate("jane@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)

	_, err = svc.Authenticate("jane@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.GetUserByID(42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

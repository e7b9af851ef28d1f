package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopterm/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	uid, cid, err := env.auth.Register(RegisterInput{
		Name:     "Dana Reyes",
		Email:    "dana@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, uid, cid, "customer id always equals user id")

	user, err := env.auth.Login(uid, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)

	customer, err := env.auth.GetCustomer(cid)
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, "Dana Reyes", customer.Name)
	assert.Equal(t, "dana@example.com", customer.Email)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.auth.Register(RegisterInput{
		Name:     "Impostor",
		Email:    "alice@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// emails are stored lowercase, so case must not bypass the check
	_, _, err = env.auth.Register(RegisterInput{
		Name:     "Impostor",
		Email:    "ALICE@Example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidatesInput(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"short name", RegisterInput{Name: "D", Email: "d@example.com", Password: "hunter2"}},
		{"bad email", RegisterInput{Name: "Dana", Email: "not-an-email", Password: "hunter2"}},
		{"short password", RegisterInput{Name: "Dana", Email: "d@example.com", Password: "abc"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := env.auth.Register(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login(1001, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login(777777, "alice123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSeededSalesAccount(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Login(9001, "sales123")
	require.NoError(t, err)
	assert.True(t, user.IsSales())
}

func TestGetUserUnknown(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.GetUser(777777)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv(t)

	start := time.Now()
	sessionNo, err := env.auth.StartSession(1001, start)
	require.NoError(t, err)
	require.NoError(t, env.auth.EndSession(1001, sessionNo, start.Add(time.Minute)))

	var end int64
	require.NoError(t, env.db.QueryRow(
		"SELECT end_time FROM sessions WHERE cid = 1001 AND session_no = ?", sessionNo,
	).Scan(&end))
	assert.Equal(t, start.Add(time.Minute).UTC().UnixMilli(), end)
}

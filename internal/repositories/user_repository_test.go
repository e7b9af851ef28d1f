package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopterm/internal/models"
)

func TestFindByUID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.FindByUID(1001)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.True(t, user.IsCustomer())

	user, err = repo.FindByUID(123)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAllocateUIDPrefersShortRange(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	uid, err := repo.AllocateUID()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, uid, 1000)
	assert.LessOrEqual(t, uid, 9999)

	exists, err := repo.Exists(uid)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateCustomerAccount(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{UID: 4242, Pwd: "hash", Role: models.RoleCustomer}
	customer := &models.Customer{CID: 4242, Name: "  Dana Reyes ", Email: "Dana@Example.COM"}
	require.NoError(t, repo.CreateCustomerAccount(user, customer))

	got, err := NewCustomerRepository(db).FindByUID(4242)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Dana Reyes", got.Name)
	assert.Equal(t, "dana@example.com", got.Email)
}

func TestEmailAvailable(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)

	available, err := repo.EmailAvailable("alice@example.com")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = repo.EmailAvailable("new@example.com")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestSessionStartAndEnd(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)

	start := time.Now()
	sessionNo, err := repo.Start(1001, start)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, sessionNo, 1000)
	assert.LessOrEqual(t, sessionNo, 999999)

	var endTime *int64
	require.NoError(t, db.QueryRow(
		"SELECT end_time FROM sessions WHERE cid = 1001 AND session_no = ?", sessionNo,
	).Scan(&endTime))
	assert.Nil(t, endTime)

	require.NoError(t, repo.End(1001, sessionNo, start.Add(time.Minute)))
	require.NoError(t, db.QueryRow(
		"SELECT end_time FROM sessions WHERE cid = 1001 AND session_no = ?", sessionNo,
	).Scan(&endTime))
	require.NotNil(t, endTime)
	assert.Equal(t, start.Add(time.Minute).UTC().UnixMilli(), *endTime)
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"

	"shopterm/internal/models"
)

// uid allocation keeps ids short enough to type at the login prompt; the
// wider range is a fallback once the short range fills up.
const (
	uidShortMin  = 1000
	uidShortMax  = 9999
	uidWideMax   = 999999
	uidDrawTries = 10000
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUID(uid int) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(
		"SELECT uid, pwd, role FROM users WHERE uid = ?", uid,
	).Scan(&user.UID, &user.Pwd, &user.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Exists(uid int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM users WHERE uid = ?)", uid,
	).Scan(&exists)
	return exists, err
}

// AllocateUID draws a random unused uid, preferring the short range.
func (r *UserRepository) AllocateUID() (int, error) {
	for i := 0; i < uidDrawTries; i++ {
		cand := uidShortMin + rand.IntN(uidShortMax-uidShortMin+1)
		exists, err := r.Exists(cand)
		if err != nil {
			return 0, err
		}
		if !exists {
			return cand, nil
		}
	}
	for {
		cand := uidShortMin + rand.IntN(uidWideMax-uidShortMin+1)
		exists, err := r.Exists(cand)
		if err != nil {
			return 0, err
		}
		if !exists {
			return cand, nil
		}
	}
}

// CreateCustomerAccount inserts the users row and its customers row in one
// transaction so a failed registration leaves nothing behind.
func (r *UserRepository) CreateCustomerAccount(user *models.User, customer *models.Customer) error {
	customer.Prepare()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		"INSERT INTO users(uid, pwd, role) VALUES (?, ?, ?)",
		user.UID, user.Pwd, user.Role,
	); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	if _, err := tx.Exec(
		"INSERT INTO customers(cid, name, email) VALUES (?, ?, ?)",
		customer.CID, customer.Name, customer.Email,
	); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}

	return tx.Commit()
}

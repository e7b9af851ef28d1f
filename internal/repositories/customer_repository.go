package repositories

import (
	"database/sql"
	"errors"

	"shopterm/internal/models"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) FindByUID(uid int) (*models.Customer, error) {
	query := `
		SELECT c.cid, c.name, c.email
		FROM customers c JOIN users u ON c.cid = u.uid
		WHERE u.uid = ?
	`

	var customer models.Customer
	err := r.db.QueryRow(query, uid).Scan(&customer.CID, &customer.Name, &customer.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// EmailAvailable reports whether no customer is registered with the email.
func (r *CustomerRepository) EmailAvailable(email string) (bool, error) {
	var taken bool
	err := r.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM customers WHERE email = ?)", email,
	).Scan(&taken)
	return !taken, err
}

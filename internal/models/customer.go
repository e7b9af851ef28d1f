package models

import "strings"

// Customer matches the customers table. A customer's cid equals the uid of
// its users row.
type Customer struct {
	CID   int    `json:"cid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c *Customer) Prepare() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
}

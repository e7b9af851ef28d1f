package models

import "time"

// ViewedProduct matches the viewed_products table; one row is recorded
// each time a product detail is shown to a customer.
type ViewedProduct struct {
	CID       int       `json:"cid"`
	SessionNo int       `json:"session_no"`
	TS        time.Time `json:"ts"`
	PID       int       `json:"pid"`
}

// Search matches the searches table; one row is recorded per customer
// search with the raw keyword as typed.
type Search struct {
	CID       int       `json:"cid"`
	SessionNo int       `json:"session_no"`
	TS        time.Time `json:"ts"`
	Query     string    `json:"query"`
}

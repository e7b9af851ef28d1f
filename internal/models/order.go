package models

import "time"

// Order matches the orders table.
type Order struct {
	Ono             int       `json:"ono"`
	CID             int       `json:"cid"`
	SessionNo       int       `json:"session_no"`
	Odate           time.Time `json:"odate"`
	ShippingAddress string    `json:"shipping_address"`
}

// OrderLine matches the orderlines table. UPrice snapshots the product
// price at the time the order was placed.
type OrderLine struct {
	Ono    int     `json:"ono"`
	LineNo int     `json:"line_no"`
	PID    int     `json:"pid"`
	Qty    int     `json:"qty"`
	UPrice float64 `json:"uprice"`
}

func (l *OrderLine) Amount() float64 {
	return float64(l.Qty) * l.UPrice
}

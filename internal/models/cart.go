package models

// CartItem matches the cart table. Cart identity is (cid, pid): quantities
// are aggregated across sessions and mutations consolidate into a single
// row under the session that performed them.
type CartItem struct {
	CID       int `json:"cid"`
	SessionNo int `json:"session_no"`
	PID       int `json:"pid"`
	Qty       int `json:"qty"`
}

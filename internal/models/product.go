package models

// Product matches the products table.
type Product struct {
	PID        int     `json:"pid"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	StockCount int     `json:"stock_count"`
	Descr      string  `json:"descr"`
}

func (p *Product) InStock() bool {
	return p.StockCount > 0
}

package models

// SalesSummary aggregates orders over a reporting window.
type SalesSummary struct {
	DistinctOrders       int     `json:"distinct_orders"`
	DistinctProductsSold int     `json:"distinct_products_sold"`
	DistinctCustomers    int     `json:"distinct_customers"`
	AvgAmountPerCustomer float64 `json:"avg_amount_per_customer"`
	TotalSalesAmount     float64 `json:"total_sales_amount"`
}

// ProductCount ranks a product by how often it was ordered or viewed.
type ProductCount struct {
	PID   int `json:"pid"`
	Count int `json:"count"`
}

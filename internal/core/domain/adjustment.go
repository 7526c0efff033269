package domain

// Adjustment records the outcome of a stock level change. Deltas may be
// negative; no floor at zero is enforced.
type Adjustment struct {
	ProductID   int64  `json:"product_id"`
	NewQuantity int    `json:"new_quantity"`
	Delta       int    `json:"adjustment"`
	Reason      string `json:"reason"`
}

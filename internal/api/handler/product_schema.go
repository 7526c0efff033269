package handler

// createProductRequest carries a new product. Numeric fields use gte rather
// than required so legitimate zero values pass validation.
type createProductRequest struct {
	Name     string  `json:"name"      validate:"required,min=1"`
	Price    float64 `json:"price"     validate:"gte=0"`
	Quantity int     `json:"quantity"  validate:"gte=0"`
	MinStock *int    `json:"min_stock" validate:"omitempty,gte=0"`
}

// updateProductRequest is a partial update. Pointer fields distinguish
// "absent" from "zero": a present field is always applied, including zeros.
type updateProductRequest struct {
	Name     *string  `json:"name"      validate:"omitempty,min=1"`
	Price    *float64 `json:"price"     validate:"omitempty,gte=0"`
	Quantity *int     `json:"quantity"  validate:"omitempty,gte=0"`
	MinStock *int     `json:"min_stock" validate:"omitempty,gte=0"`
}

type adjustRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Delta     int    `json:"adjustment"`
	Reason    string `json:"reason"     validate:"required"`
}

type totalValueResponse struct {
	TotalValue float64 `json:"total_value"`
}

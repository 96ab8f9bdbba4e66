package domain

type Warehouse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Region      string  `json:"region"`
	Location    string  `json:"location,omitempty"`
	CapacityKg  float64 `json:"capacity_kg,omitempty"`
	AvailableKg float64 `json:"available_kg,omitempty"`
	IsActive    bool    `json:"is_active"`
}

type StorageRequest struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	WarehouseID int64     `json:"warehouse_id"`
	Produce     string    `json:"produce,omitempty"`
	QuantityKg  float64   `json:"quantity_kg,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   Timestamp `json:"created_at,omitempty"`
}

package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "product:add"
	Name string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "Add Product"
}

// Privilege codes used by the routes
const (
	PrivProductAdd = "product:add"
)

// Default privileges for the system (view/add/change/delete per entity)
var DefaultPrivileges = []Privilege{
	{Code: "product:view", Name: "View Product"},
	{Code: PrivProductAdd, Name: "Add Product"},
	{Code: "product:change", Name: "Change Product"},
	{Code: "product:delete", Name: "Delete Product"},
}

package model

// Product is a catalog entry. Wire names keep the original Spanish
// field names consumed by the form (imagen, nombre, descripcion, precio).
type Product struct {
	AuditModel
	Imagen      *string `gorm:"type:varchar(255)" json:"imagen,omitempty"` // Stored file path, optional
	Nombre      string  `gorm:"type:varchar(100);not null" json:"nombre" validate:"required,max=100"`
	Descripcion string  `gorm:"type:text" json:"descripcion"`
	Precio      float64 `gorm:"type:numeric(10,2);not null" json:"precio"` // Presence is enforced by the form; 0 is a legal price
}

// TableName specifies the table name for GORM
func (Product) TableName() string {
	return "products"
}

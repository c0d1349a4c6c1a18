package entity

import "time"

// Tipos de tercero.
const (
	PartnerTypeClient   = "CLIENT"
	PartnerTypeSupplier = "SUPPLIER"
)

// Partner representa un tercero: cliente o proveedor. El tipo se fija al
// crear y no es editable después.
type Partner struct {
	ID          string
	Type        string // CLIENT | SUPPLIER
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsValidPartnerType valida el tipo de tercero.
func IsValidPartnerType(t string) bool {
	return t == PartnerTypeClient || t == PartnerTypeSupplier
}

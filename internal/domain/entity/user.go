package entity

import "time"

// Roles válidos para User. El rol es el único eje de autorización:
// admin accede a todo, employee opera el punto de venta, warehouse el almacén.
const (
	RoleAdmin     = "admin"
	RoleEmployee  = "employee"
	RoleWarehouse = "warehouse"
)

// ValidRole indica si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleEmployee || s == RoleWarehouse
}

// User representa un usuario del sistema. Los usuarios nunca se auto-registran:
// los crea un admin o el seeding inicial.
type User struct {
	ID           string
	Username     string // único (constraint en DB)
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, employee, warehouse
	CreatedAt    time.Time
}

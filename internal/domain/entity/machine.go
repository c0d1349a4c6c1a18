package entity

import "time"

// Machine representa una máquina de producción del taller.
type Machine struct {
	ID        string
	Name      string
	Model     string
	Status    string // operativa, en mantenimiento, etc. (texto libre)
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DieCutter representa un troquel disponible en el taller.
type DieCutter struct {
	ID        string
	Name      string
	Format    string // dimensiones o referencia del formato
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import "time"

// Customer representa un cliente de la tienda.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

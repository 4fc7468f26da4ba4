// Package customer is the customer registration domain: the Customer
// aggregate, the rules a customer must meet to rent, persistence and the
// registration service.
package customer

import (
	"time"

	"github.com/mvaleed/kernel/domain"
)

// EventRegistered is recorded when a customer is registered.
const EventRegistered = "customer.registered"

// Profile holds what a customer tells us about themselves.
type Profile struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Age     int    `json:"age" validate:"gte=0,lte=150"`
	License bool   `json:"license"`
}

// Customer is the aggregate root of this package.
type Customer struct {
	domain.AggregateBase
	Profile
	RegisteredAt time.Time
}

// Register creates a customer from p and records EventRegistered.
func Register(p Profile) *Customer {
	c := &Customer{
		AggregateBase: domain.NewAggregateBase(),
		Profile:       p,
		RegisteredAt:  time.Now().UTC(),
	}
	c.Record(domain.NewEvent(EventRegistered, c.ID, map[string]any{
		"name":  p.Name,
		"email": p.Email,
	}))
	return c
}

// CanRent reports whether the customer may rent a vehicle.
func (c *Customer) CanRent() bool {
	return CanRent.IsSatisfiedBy(c.Profile)
}

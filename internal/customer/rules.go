package customer

import (
	"github.com/mvaleed/kernel/specification"
	"github.com/mvaleed/kernel/specification/celspec"
)

// MinimumAge is the age from which a customer may rent.
const MinimumAge = 18

var (
	IsAdult = specification.New("must be 18 or older", func(p Profile) bool {
		return p.Age >= MinimumAge
	})

	HasLicense = specification.New("must hold a driving license", func(p Profile) bool {
		return p.License
	})

	HasEmail = celspec.MustNew[Profile](
		`entity.email.matches('^[^@\\s]+@[^@\\s]+\\.[^@\\s]+$')`,
		"must have a valid email address",
	)

	// CanRent is met by adults holding a driving license.
	CanRent = IsAdult.And(HasLicense)

	// Registrable gates registration.
	Registrable = CanRent.And(HasEmail)
)

package orderrepo

import (
	"dronedelivery/internal/core/domain/model/kernel"
)

// DefaultMaxAttempts bounds package code generation on insert.
const DefaultMaxAttempts = 5

// Option configures a GormOrderRepository.
type Option func(*GormOrderRepository)

// WithMaxAttempts sets how many package codes Insert tries before giving up.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(r *GormOrderRepository) {
		if n >= 1 {
			r.maxAttempts = n
		}
	}
}

// WithPackageCodeGenerator replaces kernel.NewPackageCode.
func WithPackageCodeGenerator(gen func() kernel.PackageCode) Option {
	return func(r *GormOrderRepository) {
		if gen != nil {
			r.newPackageCode = gen
		}
	}
}

// Package kernel provides shared domain primitives for the drone delivery system.
//
// The package includes:
//   - PackageCode: the 16 character customer-facing tracking code of an order
//
// Primitives are immutable value objects whose zero value is invalid; they must be
// built through their constructors.
package kernel

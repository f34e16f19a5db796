// Package account models the customer account that owns orders.
//
// An account's home address is the implicit origin of every order the account places.
package account

// Package address models postal locations used as order origins, order destinations
// and account home addresses.
//
// An Address has an int64 identifier assigned by storage; the zero id means the address
// has not been persisted yet. All postal components are required and trimmed.
package address

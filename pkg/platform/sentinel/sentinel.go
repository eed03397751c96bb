package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores, breakers and other
// infrastructure return these (optionally wrapped) so that services and
// handlers can translate them without knowing the backing technology.
//
// - ErrNotFound: record does not exist in the store
// - ErrUnavailable: dependency temporarily unavailable (breaker open, pool closed)
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)

package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Upstream clients return these
// (optionally wrapped) so services can translate them into domain outcomes.
//
//   - ErrNotFound: the upstream answered but holds no data for the identifier
//   - ErrUnavailable: the upstream is disabled or its circuit is open
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)

package bindkit

import "errors"

var (
	ErrNotIdle = errors.New("bindkit: Fill requires an idle bind")
)

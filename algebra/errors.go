// SPDX-License-Identifier: MIT

package algebra

import "errors"

var (
	// ErrInvalidNorm is returned when a Norm descriptor carries an unknown kind
	// or exponents outside the supported domain (p, q must be finite and >= 1).
	ErrInvalidNorm = errors.New("algebra: invalid norm")
)

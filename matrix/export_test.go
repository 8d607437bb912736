// SPDX-License-Identifier: MIT

package matrix

// White-box bridge for matrix_test: read-only views of the resolved policy
// and the option panic messages.

// EpsilonOf reports the pivot tolerance stored on m.
func EpsilonOf(m *Matrix) float64 { return m.opts.eps }

// WorkersOf reports the Mul goroutine limit stored on m.
func WorkersOf(m *Matrix) int { return m.opts.workers }

// ValidatesNaNInf reports whether m carries the finite-only policy.
func ValidatesNaNInf(m *Matrix) bool { return m.opts.validateNaNInf }

const (
	PanicEpsilonInvalid = panicEpsilonInvalid
	PanicWorkersInvalid = panicWorkersInvalid
)

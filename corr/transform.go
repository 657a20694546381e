// SPDX-License-Identifier: MIT

package corr

import "math"

// Threshold returns a copy of m with every off-diagonal entry below t set to 0.
// With absolute, the test is |M[i][j]| < t instead. With binary, every
// surviving nonzero entry becomes 1. The diagonal stays 1.
//
// Complexity: O(n²).
func Threshold(m *Matrix, t float64, binary, absolute bool) *Matrix {
	n := m.n
	data := make([]float64, n*n)
	copy(data, m.data)

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v = data[i*n+j]
			if absolute {
				if math.Abs(v) < t {
					v = 0
				}
			} else if v < t {
				v = 0
			}
			if binary && v != 0 {
				v = 1
			}
			data[i*n+j] = v
		}
	}

	return fromData(n, data, m.labels)
}

// Absolute returns |M| elementwise.
func Absolute(m *Matrix) *Matrix {
	data := make([]float64, len(m.data))
	for k, v := range m.data {
		data[k] = math.Abs(v)
	}

	return fromData(m.n, data, m.labels)
}

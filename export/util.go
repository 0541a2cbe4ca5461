package export

import "fmt"

func ptrString(p interface{}) string {
	return fmt.Sprintf("%p", p)
}

// padTo4 returns n rounded up to the next multiple of 4.
func padTo4(n int) int {
	return (n + 3) &^ 3
}

// padToMultiple rounds n up to the next multiple of m (m > 0).
func padToMultiple(n, m int) int {
	if m <= 0 {
		return n
	}
	r := n % m
	if r == 0 {
		return n
	}
	return n + (m - r)
}

var identityMatrix = [16]float64{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

func isIdentityMatrix(m [16]float64) bool {
	return m == identityMatrix
}

package utils

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// RoundUp2 - Returns the nearest power of 2 that is equal to or bigger than a
func RoundUp2(a int64) int64 {
	if a <= 1 {
		return 1
	}

	r := int64(1)
	for r < a {
		r <<= 1
	}

	return r
}

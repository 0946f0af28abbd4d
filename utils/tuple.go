package utils

// Unpack2 returns the first two elements of s. Missing elements are zero.
func Unpack2[S ~[]T, T any](s S) (first, second T) {
	if len(s) > 0 {
		first = s[0]
	}

	if len(s) > 1 {
		second = s[1]
	}

	return first, second
}

// Second keeps the second of two results, as in Second(path.Split(p)).
func Second[T any](_ any, t T) T { return t }

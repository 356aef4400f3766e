package affect

import "golang.org/x/exp/constraints"

// MaxOf returns the largest value representable by T.
func MaxOf[T constraints.Signed]() T {
	var x T = 1
	for {
		next := x<<1 | 1
		if next < x {
			return x
		}
		x = next
	}
}

// MinOf returns the smallest value representable by T.
func MinOf[T constraints.Signed]() T {
	return -MaxOf[T]() - 1
}

// SaturatingAdd returns a+b clamped to T's range, and whether it clamped.
func SaturatingAdd[T constraints.Signed](a, b T) (T, bool) {
	switch {
	case b > 0 && a > MaxOf[T]()-b:
		return MaxOf[T](), true
	case b < 0 && a < MinOf[T]()-b:
		return MinOf[T](), true
	}
	return a + b, false
}

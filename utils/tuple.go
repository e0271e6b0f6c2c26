package utils

func Unpack2[Slice ~[]T, T any](s Slice) (first T, second T) {
	switch len(s) {
	default:
		return s[0], s[1]
	case 0:
		return
	case 1:
		first = s[0]
		return
	}
}

// Pairs splits s into consecutive (first, second) tuples.
// A trailing odd element is reported through ok=false and otherwise ignored.
func Pairs[Slice ~[]T, T any](s Slice) (pairs [][2]T, ok bool) {
	pairs = make([][2]T, 0, len(s)/2)

	for i := 0; i+1 < len(s); i += 2 {
		first, second := Unpack2(s[i : i+2])
		pairs = append(pairs, [2]T{first, second})
	}

	return pairs, len(s)%2 == 0
}

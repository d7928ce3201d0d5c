package crypto

// permutation computes the deterministic Fisher-Yates permutation indices
// for an array of length n, keyed by key (§4.E). The permutation depends
// only on (key, n), never on the array's contents.
func permutation(key EncryptionKey, n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	prf := newKeyedPRF(key)
	for i := n - 1; i >= 1; i-- {
		j := int(prf.next() * float64(i+1))
		if j > i {
			// Guards against the vanishingly rare case where
			// the PRF draw is a value indistinguishable from 1.
			j = i
		}
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices
}

// Shuffle reorders arr according to the permutation keyed by key.
func Shuffle[T any](key EncryptionKey, arr []T) []T {
	indices := permutation(key, len(arr))
	out := make([]T, len(arr))
	for i, idx := range indices {
		out[i] = arr[idx]
	}
	return out
}

// Unshuffle inverts Shuffle: Unshuffle(k, Shuffle(k, x)) == x for all k, x.
func Unshuffle[T any](key EncryptionKey, arr []T) []T {
	indices := permutation(key, len(arr))
	out := make([]T, len(arr))
	for i, idx := range indices {
		out[idx] = arr[i]
	}
	return out
}

package dualstore

// MergeByID combines lists of the same collection into one list with at
// most one record per identity. Later entries overwrite earlier ones (last
// write wins by insertion order, not by timestamp); first-seen order is
// preserved.
func MergeByID[T any](identity func(T) string, lists ...[]T) []T {
	index := map[string]int{}
	var out []T
	for _, list := range lists {
		for _, item := range list {
			id := identity(item)
			if pos, seen := index[id]; seen {
				out[pos] = item
				continue
			}
			index[id] = len(out)
			out = append(out, item)
		}
	}
	return out
}

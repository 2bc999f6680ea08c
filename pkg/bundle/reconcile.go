package bundle

// Reconcile diffs bundled package names against declared dependency names.
//
// missing holds bundled names that are not declared, in bundled order;
// unused holds declared names that are not bundled, in declared order.
// Both inputs are treated as sets: repeated names appear once.
func Reconcile(bundled, declared []string) (missing, unused []string) {
	return difference(bundled, declared), difference(declared, bundled)
}

// difference returns the names of a not in b, first occurrence order.
func difference(a, b []string) []string {
	exclude := make(map[string]struct{}, len(b))
	for _, s := range b {
		exclude[s] = struct{}{}
	}
	out := []string{}
	for _, s := range a {
		if _, ok := exclude[s]; ok {
			continue
		}
		exclude[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

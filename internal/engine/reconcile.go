package engine

import "sort"

// Reconciliation is the one-time comparison between the columns a schema
// declares and the columns the source actually has.
type Reconciliation struct {
	// MissingValidators are source columns with no declared rules.
	MissingValidators []string
	// MissingFields are declared fields absent from the source.
	MissingFields []string
}

// Reconcile computes the symmetric difference between the actual column set
// and the declared field set. It has no side effects; both result sets are
// deduplicated and sorted for stable rendering.
func Reconcile(actual, declared []string) Reconciliation {
	actualSet := toSet(actual)
	declaredSet := toSet(declared)

	return Reconciliation{
		MissingValidators: subtract(actualSet, declaredSet),
		MissingFields:     subtract(declaredSet, actualSet),
	}
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func subtract(a, b map[string]struct{}) []string {
	var diff []string
	for n := range a {
		if _, ok := b[n]; !ok {
			diff = append(diff, n)
		}
	}
	sort.Strings(diff)
	return diff
}

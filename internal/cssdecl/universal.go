package cssdecl

// DefaultExclude lists names present on every CSSStyleDeclaration that are
// not style properties.
var DefaultExclude = []string{"cssText"}

// Intersect returns the names present in every list.
// No lists, or any empty list, yields an empty set.
func Intersect(lists [][]string) Set {
	if len(lists) == 0 {
		return Set{}
	}

	result := NewSet(lists[0]...)
	for _, list := range lists[1:] {
		next := NewSet(list...)
		for name := range result {
			if !next.Has(name) {
				delete(result, name)
			}
		}
	}
	return result
}

// UniversalProperties computes the camelCase property names supported by
// every browser list, minus exclude, that also appear in master.
// The result is sorted ascending.
func UniversalProperties(browsers [][]string, exclude []string, master []string) []string {
	common := Intersect(browsers)
	for _, name := range exclude {
		delete(common, name)
	}

	known := make(Set, len(master))
	for _, prop := range master {
		known.Add(CamelCase(prop))
	}
	for name := range common {
		if !known.Has(name) {
			delete(common, name)
		}
	}
	return common.Sorted()
}

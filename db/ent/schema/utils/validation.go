package utils

import "fmt"

// EnumValidator returns a field validator restricting values to the given set.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(v string) error {
		if _, ok := set[v]; !ok {
			return fmt.Errorf("value %q is not one of %v", v, allowed)
		}
		return nil
	}
}

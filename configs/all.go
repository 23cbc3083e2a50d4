package configs

import (
	"fmt"
	"iter"
)

// All decodes the value at path from every file that defines it, in loader
// order, keyed by the defining file. Malformed config files panic.
func All[T any](loader Loader, path string) iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for info, err := range loader.lookup(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := info.value.Decode(&v); err != nil {
				panic(fmt.Errorf("decode %s in %s: %w", path, info.path, err))
			}
			if !yield(info.path, v) {
				return
			}
		}
	}
}

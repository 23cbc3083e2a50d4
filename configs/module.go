package configs

import "github.com/reusee/dscope"

// Module carries no providers; programs provide their own Loader.
type Module struct {
	dscope.Module
}

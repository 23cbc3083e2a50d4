package sources

import (
	"github.com/reusee/aqa/aqaconfigs"
	"github.com/reusee/aqa/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs aqaconfigs.Module
	Nets    nets.Module
}

package aqaconfigs

import (
	"github.com/reusee/aqa/configs"
	"github.com/reusee/aqa/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

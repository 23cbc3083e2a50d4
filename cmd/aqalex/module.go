package main

import (
	"github.com/reusee/aqa/aqaconfigs"
	"github.com/reusee/aqa/aqalex"
	"github.com/reusee/aqa/debugs"
	"github.com/reusee/aqa/sources"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Lex     aqalex.Module
	Configs aqaconfigs.Module
	Sources sources.Module
	Debugs  debugs.Module
}

package aqaconfigs

import (
	"fmt"
	"path/filepath"

	"github.com/reusee/aqa/cmds"
	"github.com/reusee/aqa/configs"
	"github.com/reusee/aqa/vars"
)

type Format string

const (
	FormatDebug Format = "debug"
	FormatJSON  Format = "json"
	FormatLines Format = "lines"
)

var formatFlag = cmds.Var[string]("-format", "output format: debug, json or lines")

func (Module) Format(
	loader configs.Loader,
) Format {
	format := vars.FirstNonZero(
		Format(*formatFlag),
		configs.First[Format](loader, "format"),
		FormatDebug,
	)
	switch format {
	case FormatDebug, FormatJSON, FormatLines:
	default:
		panic(fmt.Errorf("unknown format: %s", format))
	}
	return format
}

type DropWhitespace bool

var dropWhitespaceFlag = cmds.Switch("-drop-whitespace", "do not print whitespace tokens")

func (Module) DropWhitespace(
	loader configs.Loader,
) DropWhitespace {
	return DropWhitespace(*dropWhitespaceFlag || configs.First[bool](loader, "drop_whitespace"))
}

type Color bool

var colorFlag = cmds.Var[string]("-color", "colorize output on terminals: true or false")

func (Module) Color(
	loader configs.Loader,
) Color {
	if *colorFlag != "" {
		return Color(vars.StrToBool(*colorFlag))
	}
	var color bool
	if err := loader.AssignFirst("color", &color); err == nil {
		return Color(color)
	}
	return true
}

type Parallelism int

const defaultParallelism = 4

var parallelFlag = cmds.Var[int]("-parallel", "max sources scanned at once")

func (Module) Parallelism(
	loader configs.Loader,
) Parallelism {
	n := vars.FirstNonZero(
		*parallelFlag,
		configs.First[int](loader, "parallel"),
		defaultParallelism,
	)
	return Parallelism(max(n, 1))
}

// DefaultFiles lists the file patterns scanned when no input is named on the
// command line. Relative patterns are resolved against the defining file.
type DefaultFiles []string

func (Module) DefaultFiles(
	loader configs.Loader,
) (ret DefaultFiles) {
	for file, patterns := range configs.All[[]string](loader, "files") {
		dir := filepath.Dir(file)
		for _, pattern := range patterns {
			if !filepath.IsAbs(pattern) {
				pattern = filepath.Join(dir, pattern)
			}
			ret = append(ret, pattern)
		}
	}
	return
}

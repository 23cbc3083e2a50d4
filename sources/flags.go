package sources

import (
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/reusee/aqa/cmds"
)

var filePatterns []string

func init() {
	cmds.Define("-file", cmds.Func(func(pattern string) {
		filePatterns = append(filePatterns, expandPattern(pattern)...)
	}).Desc("scan files matching the pattern; directories are walked"))
}

func expandPattern(pattern string) []string {
	paths, err := filepath.Glob(pattern)
	if err != nil || len(paths) == 0 {
		// keep it, opening reports the error
		return []string{pattern}
	}
	return paths
}

type Files []string

func (Module) Files() Files {
	return Files(filePatterns)
}

var urlsFlag = cmds.Collect[string]("-url", "scan the content at url")

type URLs []string

func (Module) URLs() URLs {
	return URLs(*urlsFlag)
}

var inlineText *string

func init() {
	cmds.Define("-e", cmds.Func(func(text string) {
		inlineText = &text
	}).Desc("scan the argument text"))
	cmds.Define("-e.", cmds.Func(func() {
		inlineText = nil
	}))
}

// Inline is the text given by -e. Set distinguishes -e "" from no -e.
type Inline struct {
	Text string
	Set  bool
}

func (Module) Inline() Inline {
	if inlineText == nil {
		return Inline{}
	}
	return Inline{
		Text: *inlineText,
		Set:  true,
	}
}

var matchFlag = cmds.Var[string]("-match", "only scan files whose path matches the regexp")

type NameMatch func(string) bool

func (Module) NameMatch() NameMatch {
	if *matchFlag == "" {
		return func(string) bool {
			return true
		}
	}
	re := regexp.MustCompile(*matchFlag)
	return func(path string) bool {
		return re.MatchString(path)
	}
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

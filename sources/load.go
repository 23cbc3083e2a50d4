package sources

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/aqa/aqaconfigs"
	"github.com/reusee/aqa/aqalex"
	"github.com/reusee/aqa/logs"
	"github.com/reusee/aqa/nets"
)

// Load yields every requested source in order: inline text, files, urls.
// With none of those requested it scans the configured default files, or
// stdin when there are none.
type Load func(ctx context.Context) iter.Seq2[*aqalex.Source, error]

func (Module) Load(
	files Files,
	urls URLs,
	inline Inline,
	defaults aqaconfigs.DefaultFiles,
	nameMatch NameMatch,
	stdin Stdin,
	client nets.HTTPClient,
	logger logs.Logger,
) Load {
	return func(ctx context.Context) iter.Seq2[*aqalex.Source, error] {
		return func(yield func(*aqalex.Source, error) bool) {

			paths := files
			if !inline.Set && len(paths) == 0 && len(urls) == 0 {
				for _, pattern := range defaults {
					paths = append(paths, expandPattern(pattern)...)
				}
			}

			if !inline.Set && len(paths) == 0 && len(urls) == 0 {
				content, err := io.ReadAll(stdin)
				if err != nil {
					yield(nil, err)
					return
				}
				yield(aqalex.NewSource("<stdin>", string(content)), nil)
				return
			}

			if inline.Set {
				if !yield(aqalex.NewSource("<inline>", inline.Text), nil) {
					return
				}
			}

			for _, path := range paths {
				for source, err := range loadPath(path, nameMatch, logger) {
					if !yield(source, err) {
						return
					}
					if err != nil {
						return
					}
				}
			}

			for _, u := range urls {
				source, err := fetch(ctx, client, u)
				if !yield(source, err) {
					return
				}
				if err != nil {
					return
				}
			}

		}
	}
}

func loadPath(root string, nameMatch NameMatch, logger logs.Logger) iter.Seq2[*aqalex.Source, error] {
	return func(yield func(*aqalex.Source, error) bool) {
		stop := false
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			if !nameMatch(path) {
				return nil
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if !isText(content) {
				logger.Warn("skip non-text file", "path", path)
				return nil
			}
			if !yield(aqalex.NewSource(path, string(content)), nil) {
				stop = true
				return fs.SkipAll
			}
			return nil
		})
		if err != nil && !stop {
			yield(nil, err)
		}
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, u string) (*aqalex.Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", u, resp.Status)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if !isText(content) {
		return nil, fmt.Errorf("fetch %s: not text", u)
	}
	return aqalex.NewSource(u, string(content)), nil
}

func isText(content []byte) bool {
	if len(content) == 0 {
		return true
	}
	for t := mimetype.Detect(content); t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return true
		}
	}
	return false
}

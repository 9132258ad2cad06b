package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads cue files lazily, earlier files taking precedence in lookups.
type Loader struct {
	load func() ([]configFile, error)
}

type configFile struct {
	path  string
	value cue.Value
}

// NewLoader validates every file against schemaSrc, a list of field declarations closed as a struct.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		load: sync.OnceValues(func() ([]configFile, error) {
			// schema and files must share one runtime to unify
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("compile schema: %w", err)
				}
			}

			files := make([]configFile, 0, len(filePaths))
			for _, filePath := range filePaths {
				file, err := loadFile(ctx, schema, filePath)
				if err != nil {
					return nil, err
				}
				files = append(files, file)
			}
			return files, nil
		}),
	}
}

func loadFile(ctx *cue.Context, schema cue.Value, filePath string) (ret configFile, err error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return ret, fmt.Errorf("read config %s: %w", filePath, err)
	}
	value := ctx.CompileBytes(content, cue.Filename(filePath))
	if err := value.Err(); err != nil {
		return ret, fmt.Errorf("compile %s: %w", filePath, err)
	}
	if schema.Exists() {
		if err := schema.Unify(value).Validate(); err != nil {
			return ret, fmt.Errorf("validate %s: %w", filePath, err)
		}
	}
	return configFile{
		path:  filePath,
		value: value,
	}, nil
}

// IterCueValues yields the value at path from each file defining it.
// A load failure is yielded once as the only element.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		files, err := l.load()
		if err != nil {
			yield(nil, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, file := range files {
			value := file.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(&value, nil) {
				return
			}
		}
	}
}

// Paths returns the files the loader read, in precedence order.
func (l Loader) Paths() ([]string, error) {
	files, err := l.load()
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(files))
	for _, file := range files {
		paths = append(paths, file.path)
	}
	return paths, nil
}

// AssignFirst decodes the first value at path into target, or returns ErrValueNotFound.
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}

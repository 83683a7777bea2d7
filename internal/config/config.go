// Package config holds compiler-wide options and the project-file
// ("brandy.json") loader, shaped as a functional-options struct exactly
// the way the teacher corpus's runtime/lexer/v2.LexerOpt configures a
// lexer instance.
package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Options holds the settings for one compiler invocation. The CLI loads
// and validates them; the lexer, parser and semantic passes do not read
// them.
type Options struct {
	IndentWidth    int
	LexerBufferSize int
	Passes         []string
	ProjectFile    string
	Verbose        bool
}

// Option mutates an Options value being built up by New.
type Option func(*Options)

// New builds an Options from defaults plus the given overrides, applied
// in order (later options win over earlier ones for the same field).
func New(opts ...Option) *Options {
	o := &Options{
		IndentWidth:     4,
		LexerBufferSize: 64 * 1024,
		Passes:          []string{"parenthookup", "returnrewrite", "binoplowering", "symtabfiller", "resolver"},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func WithIndentWidth(width int) Option {
	return func(o *Options) { o.IndentWidth = width }
}

func WithLexerBufferSize(size int) Option {
	return func(o *Options) { o.LexerBufferSize = size }
}

func WithPasses(passes ...string) Option {
	return func(o *Options) { o.Passes = passes }
}

func WithProjectFile(path string) Option {
	return func(o *Options) { o.ProjectFile = path }
}

func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

// projectFileSchema is the JSON Schema a brandy.json project file must
// satisfy before LoadProjectFile merges it into an Options, mirroring
// core/types/jsonschema.go's validate-then-merge discipline.
const projectFileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "indentWidth": {"type": "integer", "minimum": 1},
    "lexerBufferSize": {"type": "integer", "minimum": 1},
    "passes": {"type": "array", "items": {"type": "string"}}
  },
  "additionalProperties": false
}`

type projectFile struct {
	IndentWidth     *int     `json:"indentWidth"`
	LexerBufferSize *int     `json:"lexerBufferSize"`
	Passes          []string `json:"passes"`
}

// LoadProjectFile reads, schema-validates, and merges a brandy.json
// project file into o.
func LoadProjectFile(o *Options, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading project file %q", path)
	}

	schema, err := jsonschema.CompileString("brandy.json", projectFileSchema)
	if err != nil {
		return errors.Wrap(err, "compiling project file schema")
	}

	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return errors.Wrapf(err, "parsing project file %q", path)
	}
	if err := schema.Validate(generic); err != nil {
		return errors.Wrapf(err, "project file %q failed schema validation", path)
	}

	var pf projectFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return errors.Wrapf(err, "decoding project file %q", path)
	}

	if pf.IndentWidth != nil {
		o.IndentWidth = *pf.IndentWidth
	}
	if pf.LexerBufferSize != nil {
		o.LexerBufferSize = *pf.LexerBufferSize
	}
	if pf.Passes != nil {
		o.Passes = pf.Passes
	}
	o.ProjectFile = path
	return nil
}

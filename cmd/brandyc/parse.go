package main

import (
	"fmt"
	"os"

	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/config"
	"github.com/ImOnALampshade/brandy/internal/lexer"
	"github.com/ImOnALampshade/brandy/internal/parser"
	"github.com/ImOnALampshade/brandy/internal/source"
	"github.com/spf13/cobra"
)

func newParseCmd(loadOpts func() (*config.Options, error)) *cobra.Command {
	var emitCBOR bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a Brandy source file and print its module-level shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadOpts(); err != nil {
				return err
			}
			mod, _, err := parseFile(args[0])
			if err != nil {
				return err
			}

			if emitCBOR {
				data, err := ast.EncodeModule(mod)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "module: %d top-level symbol(s), %d top-level statement(s)\n",
				len(mod.Symbols), len(mod.Statements))
			return nil
		},
	}
	cmd.Flags().BoolVar(&emitCBOR, "cbor", false, "emit the module's canonical CBOR encoding instead of a summary")
	return cmd
}

// parseFile tokenizes and parses path, returning the module and the raw
// source bytes together; compile needs the bytes for sema.Run's
// token.Text lookups, while parse discards them.
func parseFile(path string) (*ast.Module, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	tu := &source.TranslationUnit{Path: path, Bytes: data}
	toks, err := source.Tokenize(tu, lexer.Default())
	if err != nil {
		return nil, nil, err
	}
	mod, err := parser.Parse(data, toks)
	if err != nil {
		return nil, nil, err
	}
	return mod, data, nil
}

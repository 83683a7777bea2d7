// Command brandyc is the Brandy compiler front-end's CLI, split into
// tokens/parse/compile subcommands the way the teacher corpus splits
// cmd/devcmd and cmd/devcmd-parser into separate entry points per
// pipeline stage, but unified under one cobra.Command tree the way
// cli/main.go wires its own flags.
package main

import (
	"fmt"
	"os"

	"github.com/ImOnALampshade/brandy/internal/config"
	"github.com/ImOnALampshade/brandy/internal/diag"
	"github.com/spf13/cobra"
)

func main() {
	var (
		verbose     bool
		projectFile string
	)

	rootCmd := &cobra.Command{
		Use:           "brandyc",
		Short:         "Brandy compiler front-end: lexer, parser, and semantic analysis",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "print full error stack traces")
	rootCmd.PersistentFlags().StringVar(&projectFile, "project", "", "path to a brandy.json project file")

	loadOpts := func() (*config.Options, error) {
		opts := config.New()
		opts.Verbose = verbose
		if projectFile != "" {
			if err := config.LoadProjectFile(opts, projectFile); err != nil {
				return nil, err
			}
		}
		return opts, nil
	}

	rootCmd.AddCommand(
		newTokensCmd(loadOpts),
		newParseCmd(loadOpts),
		newCompileCmd(loadOpts),
	)

	if err := rootCmd.Execute(); err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "%+v\n", diag.WrapStack(err, "brandyc"))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

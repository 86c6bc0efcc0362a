// Command astgrid drives read_ast/parse_ast/ast_supported_languages from
// the command line, emitting newline-delimited JSON rows. It stands in
// for the SQL host described in the core package's external-interfaces
// design: every subcommand is a thin wrapper over the core package, with
// no logic of its own beyond flag parsing and NDJSON encoding.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "astgrid",
		Short:         "Stream a language-agnostic AST row table from source files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newReadCmd(), newParseCmd(), newLanguagesCmd())
	return root
}

// rowOptions holds the flags shared by read and parse, mirrored 1:1 onto
// core.Options.
type rowOptions struct {
	ignoreErrors bool
	peek         string
	peekSize     int
	context      string
	source       string
	structure    string
	batchSize    int
}

func (o *rowOptions) addFlags(fs *cobra.Command) {
	flags := fs.Flags()
	flags.BoolVar(&o.ignoreErrors, "ignore-errors", false, "skip per-file failures instead of aborting")
	flags.StringVar(&o.peek, "peek", "auto", "source snippet mode: auto, chars, lines, none")
	flags.IntVar(&o.peekSize, "peek-size", core.DefaultPeekSize, "snippet length bound for --peek=chars/lines/auto")
	flags.StringVar(&o.context, "context", "native", "native-context detail: none, node-types-only, normalized, native")
	flags.StringVar(&o.source, "source-level", "lines", "column detail: none, lines, full")
	flags.StringVar(&o.structure, "structure-level", "full", "tree-shape detail: none, minimal, full")
	flags.IntVar(&o.batchSize, "batch-size", core.DefaultBatchSize, "rows per internal batch")
}

func (o *rowOptions) toOptions() (core.Options, error) {
	var peek core.PeekMode
	switch o.peek {
	case "auto":
		peek = core.PeekAuto
	case "chars":
		peek = core.PeekChars
	case "lines":
		peek = core.PeekLines
	case "none":
		peek = core.PeekNone
	default:
		return core.Options{}, fmt.Errorf("unknown --peek value %q", o.peek)
	}

	var context core.ContextLevel
	switch o.context {
	case "none":
		context = core.ContextNone
	case "node-types-only":
		context = core.ContextNodeTypesOnly
	case "normalized":
		context = core.ContextNormalized
	case "native":
		context = core.ContextNative
	default:
		return core.Options{}, fmt.Errorf("unknown --context value %q", o.context)
	}

	var source core.SourceLevel
	switch o.source {
	case "none":
		source = core.SourceNone
	case "lines":
		source = core.SourceLines
	case "full":
		source = core.SourceFull
	default:
		return core.Options{}, fmt.Errorf("unknown --source-level value %q", o.source)
	}

	var structure core.StructureLevel
	switch o.structure {
	case "none":
		structure = core.StructureNone
	case "minimal":
		structure = core.StructureMinimal
	case "full":
		structure = core.StructureFull
	default:
		return core.Options{}, fmt.Errorf("unknown --structure-level value %q", o.structure)
	}

	return core.Options{
		IgnoreErrors: o.ignoreErrors,
		PeekMode:     peek,
		PeekSize:     o.peekSize,
		Context:      context,
		Source:       source,
		Structure:    structure,
		BatchSize:    o.batchSize,
	}, nil
}

func newReadCmd() *cobra.Command {
	var opts rowOptions
	cmd := &cobra.Command{
		Use:   "read <pattern> [pattern...]",
		Short: "Resolve file patterns and stream their flattened AST rows",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := opts.toOptions()
			if err != nil {
				return err
			}
			batcher, err := core.ReadAST(context.Background(), args, providers.CoreResolver{Reg: providers.Default}, o)
			if err != nil {
				return err
			}
			return streamRows(cmd.OutOrStdout(), batcher)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func newParseCmd() *cobra.Command {
	var opts rowOptions
	var language, filePath, stdinFlag string
	cmd := &cobra.Command{
		Use:   "parse --language <lang> [--file <path> | --source -]",
		Short: "Parse a single in-memory source string and stream its flattened AST rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			if language == "" {
				return fmt.Errorf("--language is required")
			}
			var source []byte
			var err error
			switch {
			case stdinFlag == "-":
				source, err = io.ReadAll(cmd.InOrStdin())
			case filePath != "":
				source, err = os.ReadFile(filePath)
			default:
				return fmt.Errorf("one of --file or --source - is required")
			}
			if err != nil {
				return err
			}

			o, err := opts.toOptions()
			if err != nil {
				return err
			}
			batcher, err := core.ParseAST(context.Background(), source, language, filePath, providers.CoreResolver{Reg: providers.Default}, o)
			if err != nil {
				return err
			}
			return streamRows(cmd.OutOrStdout(), batcher)
		},
	}
	cmd.Flags().StringVarP(&language, "language", "l", "", "language name or alias")
	cmd.Flags().StringVar(&filePath, "file", "", "path to attribute rows to (not read unless --source is absent)")
	cmd.Flags().StringVar(&stdinFlag, "source", "", `use "-" to read source from stdin`)
	opts.addFlags(cmd)
	return cmd
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List every registered language, its aliases, and its extensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, d := range providers.ASTSupportedLanguages() {
				if err := enc.Encode(d); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// streamRows drains a RowBatcher batch by batch so memory use stays
// bounded by Options.BatchSize regardless of how many files or rows the
// call produces.
func streamRows(w io.Writer, batcher *core.RowBatcher) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	enc := json.NewEncoder(bw)
	for {
		batch, ok, err := batcher.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		for _, row := range batch.Rows {
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
	}
}

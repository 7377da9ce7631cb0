package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/skdltmxn/mwdemangle/demangle"
	"github.com/spf13/cobra"
)

var (
	outputFile  string
	format      string
	keepMangled bool

	output io.Writer
)

var rootCmd = &cobra.Command{
	Use:   "mwdemangle [symbols...]",
	Short: "Demangle CodeWarrior C++ symbol names",
	Long: `mwdemangle decodes C++ symbol names produced by the pre-Itanium
MetroWerks/CodeWarrior mangling convention.

Symbols are read from the arguments, or one per line from stdin when no
arguments are given. Decoding is best-effort: names that do not follow the
scheme come out partially decoded or unchanged rather than failing.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = os.Stdout
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
	},
	RunE: runDemangle,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	rootCmd.Flags().BoolVarP(&keepMangled, "keep-mangled", "k", false, "print the raw name when a symbol cannot be demangled")
}

func runDemangle(cmd *cobra.Command, args []string) error {
	symbols := args

	if len(symbols) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			symbols = append(symbols, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	switch format {
	case "json":
		return printJSON(symbols)
	case "text":
		return printText(symbols)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printText(symbols []string) error {
	for _, raw := range symbols {
		sym := demangle.Parse(raw)

		text := sym.String()
		if keepMangled && sym.Unmangleable() {
			text = raw
		}

		fmt.Fprintln(output, text)
	}
	return nil
}

type SymbolDump struct {
	Raw       string `json:"raw"`
	Demangled string `json:"demangled"`
	Owner     string `json:"owner,omitempty"`
	Name      string `json:"name"`
	Params    string `json:"params,omitempty"`
	Const     bool   `json:"const,omitempty"`
}

func printJSON(symbols []string) error {
	dumps := make([]SymbolDump, 0, len(symbols))

	for _, raw := range symbols {
		sym := demangle.Parse(raw)

		text := sym.String()
		if keepMangled && sym.Unmangleable() {
			text = raw
		}

		dumps = append(dumps, SymbolDump{
			Raw:       raw,
			Demangled: text,
			Owner:     sym.Owner,
			Name:      sym.Name,
			Params:    sym.Params,
			Const:     sym.Const,
		})
	}

	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	return enc.Encode(dumps)
}

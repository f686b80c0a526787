package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/lengyijun/tip-go/internal/ast"
	"github.com/lengyijun/tip-go/internal/diagnostics"
	"github.com/lengyijun/tip-go/internal/parser"
	"github.com/lengyijun/tip-go/internal/typeinfer"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Infer and print the type of every declaration in a program",
	Long: `analyze parses a TIP program and runs type inference over it,
printing the closed type of each function and each of its parameters
and local variables.

Pass a file path, or "-" (or nothing) to read from stdin.

Examples:
  tip analyze factorial.tip
  cat factorial.tip | tip analyze -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	filename := "<stdin>"
	var src []byte
	var err error

	if len(args) == 1 && args[0] != "-" {
		filename = args[0]
		src, err = os.ReadFile(filename)
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}
	source := string(src)

	program, err := parser.Parse(source)
	if err != nil {
		printDiagnostic(filename, source, err)
		return fmt.Errorf("parsing %s failed", filename)
	}

	result, err := typeinfer.Analyze(program)
	if err != nil {
		printDiagnostic(filename, source, err)
		return fmt.Errorf("type inference on %s failed", filename)
	}

	printResult(program, result)
	return nil
}

func printDiagnostic(filename, source string, err error) {
	d := diagnostics.FromError(err)
	fmt.Fprintf(os.Stderr, "%s: %s\n", filename, d.Format(source))
}

func printResult(program *ast.Node, result typeinfer.Result) {
	prog := program.Kind.(*ast.Program)
	for _, fn := range prog.Functions {
		f := fn.Kind.(*ast.Function)
		fmt.Printf("%s : %s\n", f.Name, result[fn])
		for _, p := range f.Params {
			fmt.Printf("  %s : %s\n", p.Kind.(*ast.Id).Name, result[p])
		}
		for _, v := range f.Vars {
			fmt.Printf("  %s : %s\n", v.Kind.(*ast.Id).Name, result[v])
		}
	}
}

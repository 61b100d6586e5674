// A little Lisp in Go: runs script files through package lisp.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/nukata/little-lisp-in-go/lisp"
)

// Main loads each file named in args in one global environment, then
// evaluates the -e expression, if any, and prints its value.
// It ignores args[0] and returns the exit status.
func Main(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	expr := flags.String("e", "", "evaluate `expr` after loading the files and print its value")
	dump := flags.Bool("ast", false, "dump the forms read from each file instead of evaluating them")
	maxDepth := flags.Int("max-depth", lisp.DefaultMaxDepth, "bound on nesting and recursion depth")
	verbose := flags.Bool("v", false, "log every evaluated form")
	if err := flags.Parse(args[1:]); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	l, err := lisp.New(lisp.WithOutput(stdout), lisp.WithMaxDepth(*maxDepth))
	if err != nil {
		logger.Error("cannot initialize", "err", err)
		return 1
	}
	for _, fileName := range flags.Args() {
		if err := run(l, fileName, *dump, stdout, logger); err != nil {
			logger.Error("failed", "file", fileName, "err", err)
			return 1
		}
	}
	if *expr != "" {
		result, err := l.Eval(*expr)
		if err != nil {
			logger.Error("failed", "expr", *expr, "err", err)
			return 1
		}
		fmt.Fprintln(stdout, lisp.Stringify(result))
	}
	return 0
}

// run reads a script and evaluates its forms one by one, or dumps them.
func run(l *lisp.Lisp, fileName string, dump bool, stdout io.Writer, logger *slog.Logger) error {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}
	forms, err := l.Read(lisp.SkipShebang(string(b)))
	if err != nil {
		return err
	}
	logger.Debug("loaded", "file", fileName, "forms", len(forms))
	if dump {
		spew.Fdump(stdout, forms)
		return nil
	}
	for _, form := range forms {
		result, err := l.EvalExpr(form)
		if err != nil {
			return err
		}
		logger.Debug("evaluated", "form", lisp.Stringify(form), "result", lisp.Stringify(result))
	}
	return nil
}

func main() {
	os.Exit(Main(os.Args, os.Stdout, os.Stderr))
}

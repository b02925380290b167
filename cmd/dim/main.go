// Command dim is the dimensional-analysis calculator.
//
//	dim                      REPL when stdin is a terminal, else reads stdin
//	dim '2 m + 3 m'          one-shot evaluation
//	dim --file exprs.txt     one expression per line
//	dim -                    read stdin explicitly
//
// Exit codes: 0 on success, 64 for invalid usage. Errors from individual
// expressions go to stderr and do not change the exit code.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	dim "github.com/Jerell/dim"
)

const (
	appName     = "dim"
	historyFile = ".dim_history"
	prompt      = "> "
	exUsage     = 64
)

var (
	flagFile    string
	flagUnits   string
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:           "dim [expression]",
		Short:         "evaluate arithmetic over physical units",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().StringVarP(&flagFile, "file", "f", "", "read expressions from a file, one per line")
	root.Flags().StringVar(&flagUnits, "units", "", "load extra units from a YAML registry file")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(exUsage)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var opts []dim.Option
	if flagUnits != "" {
		extra, err := dim.LoadRegistryFile(flagUnits)
		if err != nil {
			return err
		}
		opts = append(opts, dim.WithRegistry(extra))
	}
	eng := dim.New(opts...)

	switch {
	case flagFile != "":
		f, err := os.Open(flagFile)
		if err != nil {
			return err
		}
		defer f.Close()
		evalLines(eng, f)
		return nil

	case len(args) == 1 && args[0] == "-":
		evalLines(eng, os.Stdin)
		return nil

	case len(args) > 0:
		evalOne(eng, strings.Join(args, " "))
		return nil

	case isatty.IsTerminal(os.Stdin.Fd()):
		repl(eng)
		return nil

	default:
		evalLines(eng, os.Stdin)
		return nil
	}
}

func evalOne(eng *dim.Engine, src string) {
	out, err := eng.Eval(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, dim.WrapWithSource(err, src))
		return
	}
	if out != "" {
		fmt.Println(out)
	}
}

func evalLines(eng *dim.Engine, r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalOne(eng, line)
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: read: %v\n", appName, err)
	}
}

func repl(eng *dim.Engine) {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalOne(eng, line)
		ln.AppendHistory(line)
	}
}

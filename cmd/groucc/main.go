/*
Groucc compiles a grammar source file into a lexer and parser, then either
runs a single input through it or starts an interactive REPL that compiles
one line at a time.

Usage:

	groucc [flags] [GRAMMAR_FILE]

Without GRAMMAR_FILE, the grammar path is taken from the config file's
grammar setting.

The flags are:

	-c, --compile INPUT
		Compile the given input once, print the result, and exit, instead of
		starting the interactive REPL.

	-l, --lalr
		Build LALR(1) tables instead of the default canonical LR(1) tables.

	--config FILE
		Use the given TOML configuration file instead of ~/.groucc.toml.
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hhenn/grouper"
	"github.com/hhenn/grouper/config"
	"github.com/hhenn/grouper/internal/replio"
	"github.com/spf13/pflag"
)

const (
	exitSuccess = iota
	exitUsageError
	exitCompileError
	exitRuntimeError
)

var (
	compileOnce = pflag.StringP("compile", "c", "", "compile the given input once and exit")
	useLALR     = pflag.BoolP("lalr", "l", false, "build LALR(1) tables instead of canonical LR(1)")
	configPath  = pflag.String("config", "", "path to a groucc TOML config file (default ~/.groucc.toml)")
)

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()

	if pflag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "usage: groucc [flags] [GRAMMAR_FILE]")
		return exitUsageError
	}

	cfgPath := *configPath
	if cfgPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfgPath = filepath.Join(home, ".groucc.toml")
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: loading config: %s\n", err)
		return exitUsageError
	}
	grammarPath := cfg.Grammar
	if pflag.NArg() == 1 {
		grammarPath = pflag.Arg(0)
	}

	src, err := os.ReadFile(grammarPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: reading grammar: %s\n", err)
		return exitUsageError
	}

	mode := grouper.CanonicalLR1
	if *useLALR {
		mode = grouper.LALR1
	}

	compiler, err := grouper.New(string(src), mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: compiling grammar: %s\n", err)
		return exitCompileError
	}
	for _, c := range compiler.Conflicts {
		fmt.Fprintf(os.Stderr, "warning: %s at state %d on terminal %d (kept %s, discarded %s)\n",
			c.Kind, c.State, c.Terminal, c.Chosen, c.Lost)
	}

	if *compileOnce != "" {
		result, err := compiler.Compile(*compileOnce)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return exitRuntimeError
		}
		fmt.Printf("%v\n", result)
		return exitSuccess
	}

	return repl(compiler, cfg)
}

func repl(compiler *grouper.Compiler, cfg config.Config) int {
	reader, err := replio.NewInteractiveReader(cfg.Prompt, cfg.History)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: starting REPL: %s\n", err)
		return exitUsageError
	}
	defer reader.Close()

	for {
		line, err := reader.ReadLine()
		if err != nil {
			return exitSuccess
		}
		result, err := compiler.Compile(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			continue
		}
		fmt.Printf("%v\n", result)
	}
}

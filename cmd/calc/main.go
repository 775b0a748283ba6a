package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/davecgh/go-spew/spew"

	"github.com/zephyrtronium/calc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole command. It returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	var (
		inname, cfgname string
		flags           = defaults()
	)
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	fs.StringVar(&cfgname, "config", "", "YAML file of default settings")
	fs.StringVar(&flags.Format, "fmt", flags.Format, "result formatting string")
	fs.BoolVar(&flags.Lines, "n", flags.Lines, "evaluate separate input lines as separate expressions")
	fs.BoolVar(&flags.Echo, "echo", flags.Echo, "print postfix forms")
	fs.BoolVar(&flags.Dump, "dump", flags.Dump, "dump tokens to stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg := defaults()
	if cfgname != "" {
		var err error
		cfg, err = readConfig(cfgname)
		if err != nil {
			logger.Print(err)
			return 1
		}
	}
	// Flags given on the command line win over the config file.
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	cfg = cfg.merge(flags, set)

	srcs, err := input(inname, fs.NArg() == 0, stdin, cfg.Lines)
	if err != nil {
		logger.Print(err)
		return 1
	}
	if fs.NArg() > 0 {
		srcs = append(srcs, calc.JoinArgs(fs.Args()))
	}

	e := evaluator{cfg: cfg, out: stdout, dump: stderr}
	failed := false
	for _, src := range srcs {
		if err := e.eval(src); err != nil {
			logger.Printf("%q: %v", src, err)
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

// evaluator evaluates expressions and prints their results.
type evaluator struct {
	cfg  config
	out  io.Writer
	dump io.Writer
}

func (e *evaluator) eval(src string) error {
	toks, err := calc.Tokenize(src)
	if err != nil {
		return err
	}
	if e.cfg.Dump {
		spew.Fdump(e.dump, toks)
	}
	postfix, err := calc.Reorder(toks)
	if err != nil {
		return err
	}
	if e.cfg.Echo {
		fmt.Fprintf(e.out, "%s : ", repr.String(postfix))
	}
	r, err := calc.Evaluate(postfix)
	if err != nil {
		if e.cfg.Echo {
			fmt.Fprintln(e.out)
		}
		return err
	}
	fmt.Fprintf(e.out, e.cfg.Format+"\n", r)
	return nil
}

// expressions reads the expressions in an input. With lines, each non-blank
// line is an expression; otherwise the whole input is one.
func expressions(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{strings.TrimSpace(string(b))}, nil
	}
	var srcs []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		if s := strings.TrimSpace(scan.Text()); s != "" {
			srcs = append(srcs, s)
		}
	}
	return srcs, scan.Err()
}

// input reads the expressions from the file named by inname, or from stdin
// if inname is "-" or std is set.
func input(inname string, std bool, stdin io.Reader, lines bool) ([]string, error) {
	f, err := infile(inname, std, stdin)
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()
	return expressions(f, lines)
}

func infile(inname string, std bool, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(stdin), nil
	}
	return nil, nil
}

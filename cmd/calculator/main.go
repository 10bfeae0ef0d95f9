package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zephyrtronium/calculator"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the calculator command and returns the process exit code.
// Evaluation errors are printed to stdout and do not change the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("calculator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		inname, cfgname string
		flags           config
	)
	fs.StringVar(&cfgname, "config", "", "YAML config file")
	fs.StringVar(&inname, "in", "", "input file with one expression per line (default stdin if no args given); cannot be combined with args")
	fs.StringVar(&flags.Format, "fmt", "%g", "result formatting string")
	fs.StringVar(&flags.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.BoolVar(&flags.Echo, "echo", false, "print postfix forms")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, "warn")
	cfg := defaultConfig()
	if cfgname != "" {
		var err error
		cfg, err = loadConfig(cfgname, cfg)
		if err != nil {
			logger.Error().Err(err).Msg("failed to load config")
			return 1
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = flags.Format
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		case "echo":
			cfg.Echo = flags.Echo
		}
	})
	if err := cfg.validate(); err != nil {
		logger.Error().Err(err).Msg("invalid settings")
		return 1
	}
	logger = newLogger(stderr, cfg.LogLevel)
	if inname != "" && fs.NArg() > 0 {
		logger.Error().Str("in", inname).Msg("-in cannot be combined with expression arguments")
		return 2
	}

	c := calc{out: stdout, log: logger, verb: cfg.Format + "\n", echo: cfg.Echo}
	if fs.NArg() > 0 {
		c.eval(strings.Join(fs.Args(), ""))
		return 0
	}
	in, closer, err := infile(inname, stdin)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open input")
		return 1
	}
	defer closer()
	if err := c.lines(in); err != nil {
		logger.Error().Err(err).Msg("failed to read input")
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().Timestamp().Str("service", "calculator").Logger().
		Level(lvl)
	if err != nil {
		logger.Warn().Str("level", level).Msg("unknown log level, using warn")
	}
	return logger
}

func infile(inname string, stdin io.Reader) (io.Reader, func(), error) {
	switch inname {
	case "", "-":
		return stdin, func() {}, nil
	default:
		f, err := os.Open(inname)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
}

// calc evaluates expressions and prints their results.
type calc struct {
	out  io.Writer
	log  zerolog.Logger
	verb string
	echo bool
}

// lines evaluates each non-blank line of r as an expression.
func (c *calc) lines(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		c.eval(sc.Text())
	}
	return sc.Err()
}

func (c *calc) eval(src string) {
	postfix, r, err := evaluate(c.log, src)
	if err != nil {
		c.log.Warn().Err(err).Str("expr", src).Msg("evaluation failed")
		fmt.Fprintf(c.out, "ERROR: %v\n", err)
		return
	}
	if c.echo {
		fmt.Fprintf(c.out, "%v : ", postfix)
	}
	fmt.Fprintf(c.out, c.verb, r)
}

// evaluate runs each stage of evaluation, logging the intermediate forms.
func evaluate(log zerolog.Logger, src string) (calculator.Tokens, float64, error) {
	log.Debug().Str("expr", src).Msg("parsing expression")
	toks, err := calculator.TokenizeString(src)
	if err != nil {
		return nil, 0, err
	}
	log.Debug().Stringer("tokens", toks).Msg("tokenized")
	toks, err = calculator.Normalize(toks)
	if err != nil {
		return nil, 0, err
	}
	log.Debug().Stringer("tokens", toks).Msg("normalized")
	postfix, err := calculator.Postfix(toks)
	if err != nil {
		return nil, 0, err
	}
	log.Debug().Stringer("postfix", postfix).Msg("converted")
	r, err := calculator.EvalPostfix(postfix)
	if err != nil {
		return postfix, 0, err
	}
	log.Debug().Float64("result", r).Msg("evaluated")
	return postfix, r, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	newt "github.com/jerbob92/wazero-newt"
	"github.com/jerbob92/wazero-newt/script"
	"github.com/jerbob92/wazero-newt/toolkit"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	var (
		code  = flag.String("e", "", "Script code to run instead of a file")
		keys  = flag.String("keys", "", "Keys to queue for modal calls (comma-separated: ENTER, F12, TAB, a, 27, ...)")
		cols  = flag.Int("cols", 80, "Screen columns reported after Init")
		rows  = flag.Int("rows", 24, "Screen rows reported after Init")
		dump  = flag.Bool("dump", false, "Print the screen to stdout when the script ends")
		debug = flag.Bool("debug", false, "Log dispatches and callbacks to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: newtsh [flags] [script [args...]]")
		fmt.Fprintln(os.Stderr, "       newtsh [flags] -e 'newt Init; ...'")
		fmt.Fprintln(os.Stderr, "       newtsh            (interactive when stdin is a terminal)")
		flag.PrintDefaults()
	}
	flag.Parse()

	log := zap.NewNop()
	if *debug {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	newt.SetLogger(log.Named("newt"))
	toolkit.SetLogger(log.Named("toolkit"))
	script.SetLogger(log.Named("script"))

	status := run(*code, *keys, int32(*cols), int32(*rows), *dump, flag.Args())
	_ = log.Sync()
	os.Exit(status)
}

func run(code, keys string, cols, rows int32, dump bool, args []string) int {
	ctx := context.Background()

	in := script.New(os.Stdout, os.Stderr)
	tk := toolkit.New(toolkit.NewConfig().WithScreenSize(cols, rows))

	r, engine, err := session(ctx, in, tk, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer r.Close(ctx)

	if keys != "" {
		queued, err := parseKeys(keys, engine.GetConstants())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		tk.Feed(queued...)
	}

	var status int
	switch {
	case code != "":
		in.SetArgs(args)
		status = runSource(ctx, in, code)
	case len(args) > 0:
		src, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		in.SetArgs(args[1:])
		status = runSource(ctx, in, string(src))
	case term.IsTerminal(int(os.Stdin.Fd())):
		status = repl(ctx, in)
	default:
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		status = runSource(ctx, in, string(src))
	}

	// Leave the terminal the way a real session would.
	if engine.Initialized() {
		_ = engine.Dispatch(ctx, "finished", "", nil)
	}

	if dump {
		fmt.Println(tk.Screen())
	}
	return status
}

// session builds the runtime, instantiates the engine on it and registers
// the newt builtin with in.
func session(ctx context.Context, in *script.Interp, tk *toolkit.Toolkit, stderr io.Writer) (wazero.Runtime, newt.Engine, error) {
	r := newt.NewRuntime(ctx)
	engine, err := newt.Instantiate(ctx, r, newt.NewConfig().
		WithHost(in).
		WithToolkit(tk).
		WithStderr(stderr))
	if err != nil {
		_ = r.Close(ctx)
		return nil, nil, err
	}

	in.RegisterBuiltin("newt", func(ctx context.Context, _ *script.Interp, args []string) int {
		return engine.Builtin(ctx, args)
	})
	return r, engine, nil
}

func runSource(ctx context.Context, in *script.Interp, src string) int {
	status, err := in.Run(ctx, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "newtsh: %v\n", err)
	}
	return status
}

// parseKeys turns a key list into key codes. Names are looked up in the
// NEWT_KEY constants, single characters stand for themselves and numbers
// are raw codes.
func parseKeys(list string, constants []newt.Constant) ([]int32, error) {
	named := map[string]int32{}
	for _, c := range constants {
		if c.Array() == "NEWT_KEY" {
			named[c.Key()] = c.Value()
		}
	}

	var keys []int32
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if v, ok := named[strings.ToUpper(field)]; ok && len(field) > 1 {
			keys = append(keys, v)
			continue
		}
		if len(field) == 1 {
			keys = append(keys, int32(field[0]))
			continue
		}
		n, err := strconv.ParseInt(field, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("unknown key %q", field)
		}
		keys = append(keys, int32(n))
	}
	return keys, nil
}

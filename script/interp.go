package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"
)

// Builtin is a command implemented in Go. It returns the exit status.
type Builtin func(ctx context.Context, in *Interp, args []string) int

// Interp is a small shell-like interpreter. Variables are flat strings;
// array elements are stored under their full NAME[KEY] reference.
type Interp struct {
	vars     map[string]string
	readonly map[string]bool
	funcs    map[string]command
	builtins map[string]Builtin
	frames   [][]string
	status   int
	depth    int
	exited   bool
	signal   error // control flow raised by return, exit or break
	stdout   io.Writer
	stderr   io.Writer
	log      *zap.Logger
}

// maxDepth bounds function and eval recursion.
const maxDepth = 256

type returnSignal struct{ status int }
type exitSignal struct{ status int }
type breakSignal struct{}

func (returnSignal) Error() string { return "return outside a function" }
func (exitSignal) Error() string   { return "exit" }
func (breakSignal) Error() string  { return "break outside a loop" }

// New returns an interpreter writing to stdout and stderr. nil writers
// default to the process streams.
func New(stdout, stderr io.Writer) *Interp {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	in := &Interp{
		vars:     map[string]string{},
		readonly: map[string]bool{},
		funcs:    map[string]command{},
		builtins: map[string]Builtin{},
		frames:   [][]string{nil},
		stdout:   stdout,
		stderr:   stderr,
		log:      Logger(),
	}
	registerCoreBuiltins(in)
	return in
}

func (in *Interp) Stdout() io.Writer { return in.stdout }
func (in *Interp) Stderr() io.Writer { return in.stderr }

// Exited reports whether a script ran the exit builtin.
func (in *Interp) Exited() bool { return in.exited }

// Status is the exit status of the last command.
func (in *Interp) Status() int { return in.status }

// RegisterBuiltin adds or replaces a builtin command.
func (in *Interp) RegisterBuiltin(name string, fn Builtin) {
	in.builtins[name] = fn
}

// Get returns the value of a variable or array element.
func (in *Interp) Get(name string) (string, bool) {
	v, ok := in.vars[name]
	return v, ok
}

// Vars returns the names of all set variables, sorted.
func (in *Interp) Vars() []string {
	names := make([]string, 0, len(in.vars))
	for name := range in.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bind assigns a variable. It fails for illegal names and read-only
// variables.
func (in *Interp) Bind(name, value string) error {
	if !LegalName(name) {
		return fmt.Errorf("`%s': not a valid identifier", name)
	}
	if in.readonly[name] {
		return fmt.Errorf("%s: readonly variable", name)
	}
	in.vars[name] = value
	return nil
}

// BindReadonly assigns a variable and marks it read-only.
func (in *Interp) BindReadonly(name, value string) error {
	if err := in.Bind(name, value); err != nil {
		return err
	}
	in.readonly[name] = true
	return nil
}

// LegalName is the predicate hosts use to validate destination variables.
func (in *Interp) LegalName(name string) bool {
	return LegalName(name)
}

// Unset removes a variable unless it is read-only.
func (in *Interp) Unset(name string) error {
	if in.readonly[name] {
		return fmt.Errorf("%s: cannot unset: readonly variable", name)
	}
	delete(in.vars, name)
	return nil
}

// SetArgs sets the top-level positional parameters.
func (in *Interp) SetArgs(args []string) {
	in.frames[0] = append([]string(nil), args...)
}

func (in *Interp) positional() []string {
	return in.frames[len(in.frames)-1]
}

func (in *Interp) arg(n int) string {
	if n == 0 {
		return "newtsh"
	}
	args := in.positional()
	if n > len(args) {
		return ""
	}
	return args[n-1]
}

// Run executes a script. exit ends the script with its status. Parse
// errors are returned with status 2.
func (in *Interp) Run(ctx context.Context, src string) (int, error) {
	status, err := in.run(ctx, src)
	var exit exitSignal
	if errors.As(err, &exit) {
		in.status = exit.status
		in.exited = true
		return exit.status, nil
	}
	return status, err
}

// Eval runs code in the current scope, for callbacks. It is Run with the
// caller's positional parameters left alone.
func (in *Interp) Eval(ctx context.Context, code string) (int, error) {
	return in.Run(ctx, code)
}

func (in *Interp) run(ctx context.Context, src string) (int, error) {
	l, err := Parse(src)
	if err != nil {
		in.status = 2
		return 2, err
	}
	in.depth++
	defer func() { in.depth-- }()
	if in.depth > maxDepth {
		in.status = 1
		return 1, fmt.Errorf("maximum nesting depth exceeded")
	}
	err = in.execList(ctx, l)
	var ret returnSignal
	if errors.As(err, &ret) {
		in.status = ret.status
		return ret.status, nil
	}
	return in.status, err
}

func (in *Interp) execList(ctx context.Context, l *list) error {
	for _, ao := range l.items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := in.execAndOr(ctx, ao); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interp) execAndOr(ctx context.Context, ao *andOr) error {
	if err := in.execPipeline(ctx, ao.pipelines[0]); err != nil {
		return err
	}
	for i, op := range ao.ops {
		if (op == AND_IF) != (in.status == 0) {
			continue
		}
		if err := in.execPipeline(ctx, ao.pipelines[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interp) execPipeline(ctx context.Context, pl *pipeline) error {
	if err := in.exec(ctx, pl.cmd); err != nil {
		return err
	}
	if pl.negate {
		if in.status == 0 {
			in.status = 1
		} else {
			in.status = 0
		}
	}
	return nil
}

func (in *Interp) exec(ctx context.Context, cmd command) error {
	switch c := cmd.(type) {
	case *simpleCommand:
		return in.execSimple(ctx, c)
	case *groupCommand:
		return in.execList(ctx, c.body)
	case *funcDef:
		in.funcs[c.name] = c.body
		in.status = 0
		return nil
	case *ifCommand:
		for i, cond := range c.conds {
			if err := in.execList(ctx, cond); err != nil {
				return err
			}
			if in.status == 0 {
				return in.execList(ctx, c.bodies[i])
			}
		}
		in.status = 0
		if c.elseBody != nil {
			return in.execList(ctx, c.elseBody)
		}
		return nil
	case *whileCommand:
		status := 0
		for {
			if err := in.execList(ctx, c.cond); err != nil {
				return err
			}
			if (in.status == 0) == c.until {
				break
			}
			err := in.execList(ctx, c.body)
			status = in.status
			if errors.As(err, new(breakSignal)) {
				break
			}
			if err != nil {
				return err
			}
		}
		in.status = status
		return nil
	}
	return fmt.Errorf("unknown command node %T", cmd)
}

func (in *Interp) execSimple(ctx context.Context, c *simpleCommand) error {
	x := expander{in: in}

	i := 0
	type assignment struct{ name, value string }
	var assigns []assignment
	for ; i < len(c.words); i++ {
		name, raw, ok := splitAssignment(c.words[i].Lexeme)
		if !ok {
			break
		}
		if open := len(name) - 1; name[open] == ']' {
			at := 0
			for at < len(name) && name[at] != '[' {
				at++
			}
			key, _, err := x.expand(name[at+1:open], false)
			if err != nil {
				return in.fail(err)
			}
			name = name[:at] + "[" + key + "]"
		}
		value, err := x.word(raw)
		if err != nil {
			return in.fail(err)
		}
		assigns = append(assigns, assignment{name, value})
	}

	var args []string
	for _, w := range c.words[i:] {
		fields, err := x.fields(w.Lexeme)
		if err != nil {
			return in.fail(err)
		}
		args = append(args, fields...)
	}

	for _, a := range assigns {
		if err := in.Bind(a.name, a.value); err != nil {
			return in.fail(err)
		}
	}

	if len(args) == 0 {
		in.status = 0
		return nil
	}

	return in.call(ctx, args[0], args[1:])
}

func (in *Interp) fail(err error) error {
	fmt.Fprintf(in.stderr, "newtsh: %s\n", err)
	in.status = 1
	return nil
}

// call runs a function or builtin by name.
func (in *Interp) call(ctx context.Context, name string, args []string) error {
	if body, ok := in.funcs[name]; ok {
		if len(in.frames) > maxDepth {
			return in.fail(fmt.Errorf("%s: maximum function nesting depth exceeded", name))
		}
		in.log.Debug("calling function", zap.String("name", name), zap.Strings("args", args))
		in.frames = append(in.frames, args)
		err := in.exec(ctx, body)
		in.frames = in.frames[:len(in.frames)-1]
		var ret returnSignal
		if errors.As(err, &ret) {
			in.status = ret.status
			return nil
		}
		return err
	}

	if fn, ok := in.builtins[name]; ok {
		in.status = fn(ctx, in, args)
		sig := in.signal
		in.signal = nil
		return sig
	}

	fmt.Fprintf(in.stderr, "newtsh: %s: command not found\n", name)
	in.status = 127
	return nil
}

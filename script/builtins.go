package script

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func registerCoreBuiltins(in *Interp) {
	in.RegisterBuiltin("true", func(context.Context, *Interp, []string) int { return 0 })
	in.RegisterBuiltin(":", func(context.Context, *Interp, []string) int { return 0 })
	in.RegisterBuiltin("false", func(context.Context, *Interp, []string) int { return 1 })
	in.RegisterBuiltin("echo", builtinEcho)
	in.RegisterBuiltin("exit", builtinExit)
	in.RegisterBuiltin("return", builtinReturn)
	in.RegisterBuiltin("break", builtinBreak)
	in.RegisterBuiltin("shift", builtinShift)
	in.RegisterBuiltin("readonly", builtinReadonly)
	in.RegisterBuiltin("unset", builtinUnset)
	in.RegisterBuiltin("eval", builtinEval)
	in.RegisterBuiltin("test", builtinTest)
	in.RegisterBuiltin("[", func(ctx context.Context, in *Interp, args []string) int {
		if len(args) == 0 || args[len(args)-1] != "]" {
			fmt.Fprintln(in.stderr, "[: missing `]'")
			return 2
		}
		return builtinTest(ctx, in, args[:len(args)-1])
	})
}

func builtinEcho(_ context.Context, in *Interp, args []string) int {
	newline := true
	if len(args) > 0 && args[0] == "-n" {
		newline = false
		args = args[1:]
	}
	out := strings.Join(args, " ")
	if newline {
		out += "\n"
	}
	fmt.Fprint(in.stdout, out)
	return 0
}

// statusArg parses the optional status of exit and return.
func statusArg(in *Interp, name string, args []string) (int, bool) {
	if len(args) == 0 {
		return in.status, true
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(in.stderr, "%s: %s: numeric argument required\n", name, args[0])
		return 2, false
	}
	return n & 0xff, true
}

func builtinExit(_ context.Context, in *Interp, args []string) int {
	status, _ := statusArg(in, "exit", args)
	in.signal = exitSignal{status: status}
	return status
}

func builtinReturn(_ context.Context, in *Interp, args []string) int {
	status, ok := statusArg(in, "return", args)
	if !ok {
		return status
	}
	in.signal = returnSignal{status: status}
	return status
}

func builtinBreak(_ context.Context, in *Interp, _ []string) int {
	in.signal = breakSignal{}
	return 0
}

func builtinShift(_ context.Context, in *Interp, args []string) int {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			fmt.Fprintf(in.stderr, "shift: %s: numeric argument required\n", args[0])
			return 1
		}
		n = v
	}
	top := len(in.frames) - 1
	if n > len(in.frames[top]) {
		return 1
	}
	in.frames[top] = in.frames[top][n:]
	return 0
}

func builtinReadonly(_ context.Context, in *Interp, args []string) int {
	status := 0
	for _, arg := range args {
		name, value, hasValue := strings.Cut(arg, "=")
		if !hasValue {
			value, _ = in.Get(name)
		}
		if err := in.BindReadonly(name, value); err != nil {
			fmt.Fprintf(in.stderr, "readonly: %s\n", err)
			status = 1
		}
	}
	return status
}

func builtinUnset(_ context.Context, in *Interp, args []string) int {
	status := 0
	for _, name := range args {
		if err := in.Unset(name); err != nil {
			fmt.Fprintf(in.stderr, "unset: %s\n", err)
			status = 1
		}
	}
	return status
}

func builtinEval(ctx context.Context, in *Interp, args []string) int {
	status, err := in.run(ctx, strings.Join(args, " "))
	if err != nil {
		// Control flow raised inside eval belongs to the caller.
		switch err.(type) {
		case returnSignal, exitSignal, breakSignal:
			in.signal = err
			return status
		}
		fmt.Fprintf(in.stderr, "eval: %s\n", err)
	}
	return status
}

// builtinTest supports string and integer comparisons, -z, -n and !.
func builtinTest(_ context.Context, in *Interp, args []string) int {
	ok, err := evalTest(args)
	if err != nil {
		fmt.Fprintf(in.stderr, "test: %s\n", err)
		return 2
	}
	if ok {
		return 0
	}
	return 1
}

func evalTest(args []string) (bool, error) {
	if len(args) > 0 && args[0] == "!" {
		ok, err := evalTest(args[1:])
		return !ok, err
	}
	switch len(args) {
	case 0:
		return false, nil
	case 1:
		return args[0] != "", nil
	case 2:
		switch args[0] {
		case "-z":
			return args[1] == "", nil
		case "-n":
			return args[1] != "", nil
		}
		return false, fmt.Errorf("%s: unary operator expected", args[0])
	case 3:
		a, op, b := args[0], args[1], args[2]
		switch op {
		case "=", "==":
			return a == b, nil
		case "!=":
			return a != b, nil
		}
		x, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return false, fmt.Errorf("%s: integer expression expected", a)
		}
		y, err := strconv.ParseInt(b, 10, 64)
		if err != nil {
			return false, fmt.Errorf("%s: integer expression expected", b)
		}
		switch op {
		case "-eq":
			return x == y, nil
		case "-ne":
			return x != y, nil
		case "-lt":
			return x < y, nil
		case "-le":
			return x <= y, nil
		case "-gt":
			return x > y, nil
		case "-ge":
			return x >= y, nil
		}
		return false, fmt.Errorf("%s: binary operator expected", op)
	}
	return false, fmt.Errorf("too many arguments")
}

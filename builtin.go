package newt

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NameValidator is implemented by hosts that can tell whether a string is
// an assignable variable name. Without it any non-empty -v name is passed
// to the host's Bind.
type NameValidator interface {
	LegalName(name string) bool
}

const builtinUsage = "newt: usage: newt [-v varname] SubCommand [args...]"

var lower = cases.Lower(language.Und)

// Builtin implements Engine.Builtin. Status 2 is bad usage of the builtin
// itself, 1 is a failed subcommand.
func (we *wazeroEngine) Builtin(ctx context.Context, args []string) int {
	stderr := we.Stderr()

	resultVar := ""
	if len(args) > 0 && args[0] == "-v" {
		if len(args) < 2 {
			fmt.Fprintln(stderr, "newt: -v: option requires an argument")
			fmt.Fprintln(stderr, builtinUsage)
			return 2
		}
		resultVar = args[1]
		if !we.legalName(resultVar) {
			fmt.Fprintf(stderr, "newt: `%s': not a valid identifier\n", resultVar)
			return 2
		}
		args = args[2:]
	} else if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	if len(args) == 0 {
		fmt.Fprintln(stderr, builtinUsage)
		return 2
	}

	err := we.Dispatch(ctx, lower.String(args[0]), resultVar, args[1:])
	if err == nil {
		return 0
	}

	if errors.Is(err, ErrUnknownCommand) {
		fmt.Fprintf(stderr, "newt: unknown subcommand '%s'\n", args[0])
		return 1
	}

	var bindingErr *BindingError
	if errors.As(err, &bindingErr) {
		if msg := bindingErr.UsageMessage(); msg != "" {
			fmt.Fprintln(stderr, msg)
			return 1
		}
	}
	fmt.Fprintf(stderr, "newt: %s: %s\n", args[0], err)
	return 1
}

func (we *wazeroEngine) legalName(name string) bool {
	if v, ok := we.Host().(NameValidator); ok {
		return v.LegalName(name)
	}
	return name != ""
}

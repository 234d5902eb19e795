package newt

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type wrapperStyle int

const (
	styleReturn wrapperStyle = iota
	styleOptional
	styleOut
	styleVariadic
)

// wrapperSpec describes a generated command: which native it drives and
// how the tokens map onto the native's parameters and results.
type wrapperSpec struct {
	Name     string
	Native   string
	Style    wrapperStyle
	Usage    string
	Defaults []string
}

type wrapperFunc func(ctx context.Context, e *engine, c *call) error

type wrapperEntry struct {
	name  string
	usage string
	fn    wrapperFunc
}

// dispatchTable maps lower-cased command names to wrappers. It is built
// once and never modified.
type dispatchTable struct {
	entries map[string]*wrapperEntry
}

// newDispatchTable panics on a duplicate name.
func newDispatchTable(entries []*wrapperEntry) *dispatchTable {
	t := &dispatchTable{entries: make(map[string]*wrapperEntry, len(entries))}
	for _, entry := range entries {
		key := strings.ToLower(entry.name)
		if _, ok := t.entries[key]; ok {
			panic(fmt.Errorf("duplicate command %s in dispatch table", entry.name))
		}
		t.entries[key] = entry
	}
	return t
}

// Lookup expects an already lower-cased name.
func (t *dispatchTable) Lookup(name string) (*wrapperEntry, bool) {
	entry, ok := t.entries[name]
	return entry, ok
}

// Names returns the display names of every command, sorted.
func (t *dispatchTable) Names() []string {
	names := make([]string, 0, len(t.entries))
	for _, entry := range t.entries {
		names = append(names, entry.name)
	}
	sort.Strings(names)
	return names
}

// buildEntries turns the catalog into wrapper entries: generated commands,
// hand-written commands, then aliases of either.
func buildEntries(specs []wrapperSpec, custom []*wrapperEntry, aliases map[string]string) []*wrapperEntry {
	entries := make([]*wrapperEntry, 0, len(specs)+len(custom)+len(aliases))
	byName := map[string]*wrapperEntry{}
	for i := range specs {
		entry := &wrapperEntry{name: specs[i].Name, usage: specs[i].Usage, fn: generatedWrapper(specs[i])}
		entries = append(entries, entry)
		byName[entry.name] = entry
	}
	for _, entry := range custom {
		entries = append(entries, entry)
		byName[entry.name] = entry
	}

	aliasNames := make([]string, 0, len(aliases))
	for alias := range aliases {
		aliasNames = append(aliasNames, alias)
	}
	sort.Strings(aliasNames)
	for _, alias := range aliasNames {
		target, ok := byName[aliases[alias]]
		if !ok {
			panic(fmt.Errorf("alias %s points at unknown command %s", alias, aliases[alias]))
		}
		entries = append(entries, &wrapperEntry{name: alias, usage: target.usage, fn: target.fn})
	}
	return entries
}

func generatedWrapper(spec wrapperSpec) wrapperFunc {
	switch spec.Style {
	case styleOptional:
		return func(ctx context.Context, e *engine, c *call) error {
			native := e.natives[spec.Native]
			args, err := e.walkOptional(ctx, c, native.Params, spec.Defaults)
			if err != nil {
				return err
			}
			results, err := e.invoke(ctx, c, spec.Native, args)
			if err != nil {
				return err
			}
			return e.finish(ctx, c, native.Results, results)
		}
	case styleOut:
		return func(ctx context.Context, e *engine, c *call) error {
			native := e.natives[spec.Native]
			args, err := e.walk(ctx, c, native.Params)
			if err != nil {
				return err
			}
			names, err := e.walkNames(ctx, c, len(native.Results))
			if err != nil {
				return err
			}
			results, err := e.invoke(ctx, c, spec.Native, args)
			if err != nil {
				return err
			}
			for i := range results {
				if err := e.bindValue(ctx, c, names[i], native.Results[i], results[i]); err != nil {
					return err
				}
			}
			return nil
		}
	case styleVariadic:
		return func(ctx context.Context, e *engine, c *call) error {
			native := e.natives[spec.Native]
			head, err := e.walk(ctx, c, native.Params[:len(native.Params)-1])
			if err != nil {
				return err
			}
			tail, err := e.walkVariadic(ctx, c, native.Params[len(native.Params)-1])
			if err != nil {
				return err
			}
			for _, v := range tail {
				if _, err := e.invoke(ctx, c, spec.Native, append(head[:len(head):len(head)], v)); err != nil {
					return err
				}
			}
			return nil
		}
	}
	return func(ctx context.Context, e *engine, c *call) error {
		native := e.natives[spec.Native]
		args, err := e.walk(ctx, c, native.Params)
		if err != nil {
			return err
		}
		results, err := e.invoke(ctx, c, spec.Native, args)
		if err != nil {
			return err
		}
		return e.finish(ctx, c, native.Results, results)
	}
}

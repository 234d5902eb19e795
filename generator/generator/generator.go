package generator

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed templates/*
	templates embed.FS
)

// Options configure one generator run.
type Options struct {
	// Dir is the directory of the package the catalog is generated into.
	Dir string
	// FileName is the file that holds the go:generate directive, used to
	// find the target package. Empty means the package in Dir.
	FileName string
	// Catalog is the path of catalog.yaml.
	Catalog string
	// Toolkit is the import path of the native toolkit package.
	Toolkit string
	// Out is the output file, relative to Dir.
	Out string
}

type kindInfo struct {
	ident  string
	goType string
}

// kinds maps catalog kind names to the core's Kind constants and the Go
// type the toolkit uses for them.
var kinds = map[string]kindInfo{
	"int":         {"KindInt", "int32"},
	"uint":        {"KindUint", "uint32"},
	"longlong":    {"KindLongLong", "int64"},
	"ulonglong":   {"KindULongLong", "uint64"},
	"char":        {"KindChar", "byte"},
	"text":        {"KindText", "string"},
	"component":   {"KindComponent", "toolkit.Component"},
	"grid":        {"KindGrid", "toolkit.Grid"},
	"cookie":      {"KindCookie", "uint64"},
	"sense":       {"KindSense", "toolkit.FlagsSense"},
	"gridelement": {"KindGridElement", "toolkit.GridElement"},
	"filter":      {"KindFilter", "toolkit.EntryFilter"},
	"suspend":     {"KindSuspend", "toolkit.SuspendCallback"},
	"callback":    {"KindCallback", "toolkit.Callback"},
}

var styles = map[string]string{
	"":         "styleReturn",
	"return":   "styleReturn",
	"optional": "styleOptional",
	"out":      "styleOut",
	"variadic": "styleVariadic",
}

type Catalog struct {
	Receiver string            `yaml:"receiver"`
	Natives  []CatalogNative   `yaml:"natives"`
	Commands []CatalogCommand  `yaml:"commands"`
	Aliases  map[string]string `yaml:"aliases"`
}

type CatalogNative struct {
	Name     string   `yaml:"name"`
	Params   []string `yaml:"params"`
	Results  []string `yaml:"results"`
	Style    string   `yaml:"style"`
	Usage    string   `yaml:"usage"`
	Defaults []string `yaml:"defaults"`
	Hand     bool     `yaml:"hand"`
	Custom   bool     `yaml:"custom"`
}

type CatalogCommand struct {
	Name     string   `yaml:"name"`
	Native   string   `yaml:"native"`
	Style    string   `yaml:"style"`
	Usage    string   `yaml:"usage"`
	Defaults []string `yaml:"defaults"`
}

func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	catalog := &Catalog{}
	if err := yaml.Unmarshal(raw, catalog); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	if catalog.Receiver == "" {
		catalog.Receiver = "Toolkit"
	}
	return catalog, nil
}

func Generate(opts Options) error {
	catalog, err := LoadCatalog(opts.Catalog)
	if err != nil {
		return err
	}

	pattern := "."
	if opts.FileName != "" {
		pattern = fmt.Sprintf("file=%s", opts.FileName)
	}

	fset := token.NewFileSet()
	pkgs, err := packages.Load(&packages.Config{
		Dir:  opts.Dir,
		Fset: fset,
		Mode: packages.NeedName | packages.NeedTypes,
	}, pattern, opts.Toolkit)
	if err != nil {
		return err
	}

	var target, tk *packages.Package
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 && pkg.PkgPath == opts.Toolkit {
			return fmt.Errorf("could not load %s: %v", opts.Toolkit, pkg.Errors[0])
		}
		if pkg.PkgPath == opts.Toolkit {
			tk = pkg
		} else {
			target = pkg
		}
	}
	if target == nil || tk == nil {
		return fmt.Errorf("could not find target package and %s", opts.Toolkit)
	}

	data, err := buildTemplateData(catalog, tk.Types)
	if err != nil {
		return err
	}
	data.Pkg = target.Name
	data.Source = filepath.Base(opts.Catalog)

	tmpl, err := template.New("").
		Funcs(TemplateFunctions).
		ParseFS(templates, "templates/*.tmpl")
	if err != nil {
		return err
	}

	return ExecuteTemplate(tmpl, "catalog.tmpl", filepath.Join(opts.Dir, opts.Out), data)
}

// buildTemplateData checks every native against the receiver's method set
// and renders the call expressions.
func buildTemplateData(catalog *Catalog, tk *types.Package) (TemplateData, error) {
	data := TemplateData{
		ToolkitPath: tk.Path(),
		ToolkitName: tk.Name(),
		Receiver:    catalog.Receiver,
	}

	obj := tk.Scope().Lookup(catalog.Receiver)
	if obj == nil {
		return data, fmt.Errorf("%s.%s not found", tk.Name(), catalog.Receiver)
	}
	methods := types.NewMethodSet(types.NewPointer(obj.Type()))

	qualifier := func(p *types.Package) string { return p.Name() }

	seen := map[string]bool{}
	for _, n := range catalog.Natives {
		if seen[n.Name] {
			return data, fmt.Errorf("native %s is listed twice", n.Name)
		}
		seen[n.Name] = true

		if !n.Custom {
			cmd, err := templateCommand(n.Name, n.Name, n.Style, n.Usage, n.Defaults)
			if err != nil {
				return data, err
			}
			data.Commands = append(data.Commands, cmd)
		}
		if n.Hand {
			continue
		}

		sel := methods.Lookup(tk, n.Name)
		if sel == nil {
			return data, fmt.Errorf("native %s: no method (*%s).%s", n.Name, catalog.Receiver, n.Name)
		}
		sig := sel.Type().(*types.Signature)

		native := TemplateNative{Name: n.Name}

		if sig.Params().Len() != len(n.Params) {
			return data, fmt.Errorf("native %s: catalog has %d params, method has %d", n.Name, len(n.Params), sig.Params().Len())
		}
		for i, kind := range n.Params {
			info, ok := kinds[kind]
			if !ok {
				return data, fmt.Errorf("native %s: unknown kind %q", n.Name, kind)
			}
			if got := goTypeString(sig.Params().At(i).Type(), qualifier); got != info.goType {
				return data, fmt.Errorf("native %s: param %d is %s, kind %s wants %s", n.Name, i, got, kind, info.goType)
			}
			native.Params = append(native.Params, info.ident)
			native.Args = append(native.Args, fmt.Sprintf("args[%d].(%s)", i, info.goType))
		}

		results := sig.Results()
		count := results.Len()
		if count > 0 && types.Identical(results.At(count-1).Type(), types.Universe.Lookup("error").Type()) {
			native.ReturnsError = true
			count--
		}
		if count != len(n.Results) {
			return data, fmt.Errorf("native %s: catalog has %d results, method has %d", n.Name, len(n.Results), count)
		}
		for i, kind := range n.Results {
			info, ok := kinds[kind]
			if !ok {
				return data, fmt.Errorf("native %s: unknown kind %q", n.Name, kind)
			}
			if got := goTypeString(results.At(i).Type(), qualifier); got != info.goType {
				return data, fmt.Errorf("native %s: result %d is %s, kind %s wants %s", n.Name, i, got, kind, info.goType)
			}
			native.Results = append(native.Results, info.ident)
			native.ResultNames = append(native.ResultNames, "r"+strconv.Itoa(i))
		}

		data.Natives = append(data.Natives, native)
	}

	for _, c := range catalog.Commands {
		if !seen[c.Native] {
			return data, fmt.Errorf("command %s uses unknown native %s", c.Name, c.Native)
		}
		cmd, err := templateCommand(c.Name, c.Native, c.Style, c.Usage, c.Defaults)
		if err != nil {
			return data, err
		}
		data.Commands = append(data.Commands, cmd)
	}

	aliases := make([]string, 0, len(catalog.Aliases))
	for alias := range catalog.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		data.Aliases = append(data.Aliases, TemplateAlias{Name: alias, Target: catalog.Aliases[alias]})
	}

	return data, nil
}

func goTypeString(t types.Type, qualifier types.Qualifier) string {
	s := types.TypeString(t, qualifier)
	if s == "uint8" {
		return "byte"
	}
	return s
}

func templateCommand(name, native, style, usage string, defaults []string) (TemplateCommand, error) {
	ident, ok := styles[style]
	if !ok {
		return TemplateCommand{}, fmt.Errorf("command %s: unknown style %q", name, style)
	}
	if ident == "styleOptional" && len(defaults) == 0 {
		return TemplateCommand{}, fmt.Errorf("command %s: optional style needs defaults", name)
	}
	cmd := TemplateCommand{Name: name, Native: native, Style: ident, Usage: strings.Join(strings.Fields(usage), " ")}
	for _, d := range defaults {
		cmd.Defaults = append(cmd.Defaults, strconv.Quote(d))
	}
	return cmd, nil
}

var TemplateFunctions = template.FuncMap{
	"join": strings.Join,
}

func ExecuteTemplate(tmpl *template.Template, name string, path string, data TemplateData) error {
	writer := bytes.NewBuffer(nil)
	err := tmpl.ExecuteTemplate(writer, name, data)
	if err != nil {
		return err
	}

	fileBytes := writer.Bytes()
	formattedSource, err := format.Source(fileBytes)
	if err != nil {
		return fmt.Errorf("could not format %s: %w\nsource:\n%s", name, err, fileBytes)
	}

	fileWriter, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fileWriter.Close()
	_, err = fileWriter.Write(formattedSource)
	if err != nil {
		return err
	}
	return nil
}

type TemplateData struct {
	Pkg         string
	Source      string
	ToolkitPath string
	ToolkitName string
	Receiver    string
	Natives     []TemplateNative
	Commands    []TemplateCommand
	Aliases     []TemplateAlias
}

type TemplateNative struct {
	Name         string
	Params       []string
	Results      []string
	Args         []string
	ResultNames  []string
	ReturnsError bool
}

type TemplateCommand struct {
	Name     string
	Native   string
	Style    string
	Usage    string
	Defaults []string
}

type TemplateAlias struct {
	Name   string
	Target string
}

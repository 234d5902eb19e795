package generator

import (
	"bytes"
	"go/types"
	"testing"
	"text/template"

	"golang.org/x/tools/go/packages"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGenerator(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Generator Suite")
}

var _ = Describe("Generator", func() {
	var tk *types.Package

	BeforeEach(func() {
		pkgs, err := packages.Load(&packages.Config{Mode: packages.NeedName | packages.NeedTypes}, "github.com/jerbob92/wazero-newt/toolkit")
		Expect(err).To(BeNil())
		Expect(pkgs).To(HaveLen(1))
		tk = pkgs[0].Types
	})

	findNative := func(data TemplateData, name string) *TemplateNative {
		for i := range data.Natives {
			if data.Natives[i].Name == name {
				return &data.Natives[i]
			}
		}
		return nil
	}

	It("matches the shipped catalog against the toolkit", func() {
		catalog, err := LoadCatalog("../catalog.yaml")
		Expect(err).To(BeNil())

		data, err := buildTemplateData(catalog, tk)
		Expect(err).To(BeNil())

		button := findNative(data, "CompactButton")
		Expect(button).ToNot(BeNil())
		Expect(button.Params).To(Equal([]string{"KindInt", "KindInt", "KindText"}))
		Expect(button.Args).To(Equal([]string{"args[0].(int32)", "args[1].(int32)", "args[2].(string)"}))
		Expect(button.ReturnsError).To(BeFalse())

		entry := findNative(data, "ListboxGetEntry")
		Expect(entry).ToNot(BeNil())
		Expect(entry.ResultNames).To(Equal([]string{"r0", "r1"}))
		Expect(entry.ReturnsError).To(BeTrue())

		Expect(findNative(data, "SetColors")).To(BeNil())
		Expect(data.Aliases).To(ContainElement(TemplateAlias{Name: "ListboxAddEntry", Target: "ListboxAppendEntry"}))
	})

	It("renders formatted source", func() {
		catalog, err := LoadCatalog("../catalog.yaml")
		Expect(err).To(BeNil())
		data, err := buildTemplateData(catalog, tk)
		Expect(err).To(BeNil())
		data.Pkg = "newt"
		data.Source = "catalog.yaml"

		tmpl, err := template.New("").Funcs(TemplateFunctions).ParseFS(templates, "templates/*.tmpl")
		Expect(err).To(BeNil())

		out := &bytes.Buffer{}
		Expect(tmpl.ExecuteTemplate(out, "catalog.tmpl", data)).To(Succeed())
		Expect(out.String()).To(ContainSubstring(`r0 := tk.CompactButton(args[0].(int32), args[1].(int32), args[2].(string))`))
		Expect(out.String()).To(ContainSubstring(`Defaults: []string{"NULL", "NULL", "0"}`))
	})

	DescribeTable("rejects catalogs that do not match the toolkit",
		func(native CatalogNative, message string) {
			_, err := buildTemplateData(&Catalog{Receiver: "Toolkit", Natives: []CatalogNative{native}}, tk)
			Expect(err).To(MatchError(ContainSubstring(message)))
		},
		Entry("unknown method", CatalogNative{Name: "NoSuchCall"}, "no method"),
		Entry("wrong arity", CatalogNative{Name: "CompactButton", Params: []string{"int"}, Results: []string{"component"}}, "catalog has 1 params"),
		Entry("wrong kind", CatalogNative{Name: "CompactButton", Params: []string{"int", "int", "int"}, Results: []string{"component"}}, "kind int wants int32"),
		Entry("unknown kind", CatalogNative{Name: "Delay", Params: []string{"float"}}, `unknown kind "float"`),
		Entry("optional without defaults", CatalogNative{Name: "Cls", Style: "optional"}, "needs defaults"),
	)
})

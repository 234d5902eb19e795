package main

import (
	"bytes"
	"context"
	"testing"

	newt "github.com/jerbob92/wazero-newt"
	"github.com/jerbob92/wazero-newt/script"
	"github.com/jerbob92/wazero-newt/toolkit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestNewtsh(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Newtsh Suite")
}

type keyConstant struct {
	key   string
	value int32
}

func (k keyConstant) Array() string { return "NEWT_KEY" }
func (k keyConstant) Key() string   { return k.key }
func (k keyConstant) Value() int32  { return k.value }
func (k keyConstant) Name() string  { return "NEWT_KEY[" + k.key + "]" }

var _ = Describe("parseKeys", func() {
	constants := []newt.Constant{
		keyConstant{"ENTER", toolkit.KeyEnter},
		keyConstant{"F12", toolkit.KeyF12},
	}

	It("resolves names, characters and codes", func() {
		keys, err := parseKeys("enter, a,F12,27,0x20", constants)
		Expect(err).To(BeNil())
		Expect(keys).To(Equal([]int32{toolkit.KeyEnter, 'a', toolkit.KeyF12, 27, 0x20}))
	})

	It("rejects unknown names", func() {
		_, err := parseKeys("ENTER,NOPE", constants)
		Expect(err).To(MatchError(ContainSubstring(`unknown key "NOPE"`)))
	})
})

var _ = Describe("session", func() {
	It("dispatches commands on the runtime it builds", func() {
		ctx := context.Background()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		in := script.New(stdout, stderr)
		tk := toolkit.New(toolkit.NewConfig().WithScreenSize(80, 24))

		r, engine, err := session(ctx, in, tk, stderr)
		Expect(err).To(BeNil())
		DeferCleanup(func() {
			Expect(r.Close(ctx)).To(Succeed())
		})

		var status int
		Expect(func() {
			status, err = in.Run(ctx, `newt Init; newt -v btn CompactButton 5 3 "OK"; echo "$btn"; newt Finished`)
		}).NotTo(Panic())
		Expect(err).To(BeNil())
		Expect(status).To(Equal(0))
		Expect(stderr.String()).To(BeEmpty())
		Expect(stdout.String()).To(MatchRegexp(`^0x[0-9a-f]+\n$`))
		Expect(engine.LiveHandles()).To(Equal(1))
	})
})

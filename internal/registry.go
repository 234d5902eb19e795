package newt

import (
	"fmt"

	"github.com/google/btree"
	"go.uber.org/zap"
)

type handleEntry struct {
	addr uint64
	kind Kind
}

func handleLess(a, b handleEntry) bool {
	return a.addr < b.addr
}

// handleRegistry tracks the handles that have been shown to the host. It
// never decides lifetime: entries leave only through Invalidate, which is
// driven by the toolkit's destroy notification.
type handleRegistry struct {
	tree *btree.BTreeG[handleEntry]
	log  *zap.Logger
}

func newHandleRegistry(log *zap.Logger) *handleRegistry {
	return &handleRegistry{
		tree: btree.NewG[handleEntry](16, handleLess),
		log:  log,
	}
}

// Register records addr as a live handle of the given kind. Null is never
// registered.
func (r *handleRegistry) Register(kind Kind, addr uint64) {
	if addr == 0 {
		return
	}
	prev, replaced := r.tree.ReplaceOrInsert(handleEntry{addr: addr, kind: kind})
	if !replaced {
		r.log.Debug("handle registered", zap.Stringer("kind", kind), zap.String("handle", formatPointer(addr)))
	} else if prev.kind != kind {
		r.log.Warn("handle re-registered with a different kind",
			zap.Stringer("was", prev.kind), zap.Stringer("kind", kind), zap.String("handle", formatPointer(addr)))
	}
}

// Resolve decodes a handle token. NULL resolves to 0. Any other token must
// name a live entry of the same kind.
func (r *handleRegistry) Resolve(kind Kind, token string) (uint64, error) {
	addr, err := parsePointer(token)
	if err != nil {
		return 0, err
	}
	if addr == 0 {
		return 0, nil
	}
	entry, ok := r.tree.Get(handleEntry{addr: addr})
	if !ok {
		return 0, newError(PhaseDecode, KindInvalidHandle).
			Detail("%s was never handed out", formatPointer(addr)).Build()
	}
	if entry.kind != kind {
		return 0, newError(PhaseDecode, KindInvalidHandle).
			Detail("%s is a %s, not a %s", formatPointer(addr), entry.kind, kind).Build()
	}
	return addr, nil
}

// Invalidate drops addr. Unknown addresses are ignored.
func (r *handleRegistry) Invalidate(addr uint64) {
	if _, ok := r.tree.Delete(handleEntry{addr: addr}); ok {
		r.log.Debug("handle invalidated", zap.String("handle", formatPointer(addr)))
	}
}

func (r *handleRegistry) Len() int {
	return r.tree.Len()
}

func (r *handleRegistry) String() string {
	return fmt.Sprintf("handleRegistry(%d live)", r.tree.Len())
}

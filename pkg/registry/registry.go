// Package registry tracks live stores by name for tooling and
// diagnostics. Application code does not need it to use stores; it
// exists so generated accessors, inspectors, and tests can find a
// store without threading the handle through every layer.
package registry

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/go-drift/tide/pkg/errors"
	"github.com/go-drift/tide/pkg/store"
)

// Handle is the type-erased view of a registered store. *store.Store[T]
// satisfies it for any T.
type Handle interface {
	// State returns the current state value.
	State() any
	// ListenerCount returns the number of active subscriptions.
	ListenerCount() int
}

// Registry is a concurrent name-to-store map. Registration commonly
// happens in package init code while the UI thread is already reading,
// so the map is safe for concurrent use even though the stores it
// holds are not.
type Registry struct {
	stores *xsync.MapOf[string, Handle]
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{stores: xsync.NewMapOf[string, Handle]()}
}

// Default is the process-wide registry used by generated accessors.
var Default = New()

// Register adds a store under name. Registering a name twice is an
// error; use Unregister first to replace a store.
func (r *Registry) Register(name string, h Handle) error {
	if name == "" {
		return &errors.StateError{
			Op:   "registry.Register",
			Kind: errors.KindRegistry,
			Err:  fmt.Errorf("store name must not be empty"),
		}
	}
	if h == nil {
		return &errors.StateError{
			Op:    "registry.Register",
			Kind:  errors.KindRegistry,
			Store: name,
			Err:   fmt.Errorf("nil store handle"),
		}
	}
	if _, loaded := r.stores.LoadOrStore(name, h); loaded {
		return &errors.StateError{
			Op:    "registry.Register",
			Kind:  errors.KindRegistry,
			Store: name,
			Err:   fmt.Errorf("already registered"),
		}
	}
	return nil
}

// Lookup returns the store registered under name.
func (r *Registry) Lookup(name string) (Handle, bool) {
	return r.stores.Load(name)
}

// Unregister removes the store registered under name. Removing an
// unknown name is a no-op.
func (r *Registry) Unregister(name string) {
	r.stores.Delete(name)
}

// Range calls fn for each registered store until fn returns false.
func (r *Registry) Range(fn func(name string, h Handle) bool) {
	r.stores.Range(fn)
}

// Len returns the number of registered stores.
func (r *Registry) Len() int {
	return r.stores.Size()
}

// StoreOf looks up name in r and asserts it to its concrete state
// type. It returns false when the name is unknown or registered with a
// different state type.
func StoreOf[T any](r *Registry, name string) (*store.Store[T], bool) {
	h, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	s, ok := h.(*store.Store[T])
	return s, ok
}

// Register adds a store to [Default].
func Register(name string, h Handle) error {
	return Default.Register(name, h)
}

// Lookup returns a store from [Default].
func Lookup(name string) (Handle, bool) {
	return Default.Lookup(name)
}

// Unregister removes a store from [Default].
func Unregister(name string) {
	Default.Unregister(name)
}

package bridge

import (
	"context"
	"fmt"
	"sync"

	"github.com/dop251/goja"
)

// JSBridge exposes a wallet object injected into a JavaScript environment
// through the Invoker boundary. The host supplies a bootstrap script that
// defines the provider object on the global scope, mirroring how browser
// extensions inject their wallet objects late in page load.
//
// A goja runtime is single-threaded; all access is serialized.
type JSBridge struct {
	mu     sync.Mutex
	vm     *goja.Runtime
	object string
}

// NewJSBridge creates a bridge around a JS environment. The bootstrap
// script runs once and may or may not define the named global object;
// availability reflects whether it did.
func NewJSBridge(object, bootstrap string) (*JSBridge, error) {
	if object == "" {
		return nil, fmt.Errorf("%w: empty object name", ErrMalformedResponse)
	}

	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))

	if bootstrap != "" {
		if _, err := vm.RunString(bootstrap); err != nil {
			return nil, fmt.Errorf("bootstrap script: %w", jsError(err))
		}
	}

	return &JSBridge{vm: vm, object: object}, nil
}

// Eval runs additional script in the environment, for hosts that inject
// provider objects after construction.
func (b *JSBridge) Eval(script string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.vm.RunString(script); err != nil {
		return jsError(err)
	}
	return nil
}

// Available reports whether the provider object exists on the global scope.
func (b *JSBridge) Available(_ context.Context) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	obj := b.vm.GlobalObject().Get(b.object)
	if obj == nil || goja.IsUndefined(obj) || goja.IsNull(obj) {
		return false, nil
	}
	return true, nil
}

// Invoke calls a method on the provider object and returns its exported
// result. Promise-valued results are unwrapped; a still-pending promise is
// a provider error, not a hang.
func (b *JSBridge) Invoke(ctx context.Context, method string, args ...any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Interrupt the runtime if the context expires mid-call. The watcher
	// must be fully stopped before the interrupt is cleared, or a
	// late Interrupt would survive into the next call.
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			b.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()
	defer func() {
		close(done)
		<-stopped
		b.vm.ClearInterrupt()
	}()

	objVal := b.vm.GlobalObject().Get(b.object)
	if objVal == nil || goja.IsUndefined(objVal) || goja.IsNull(objVal) {
		return nil, fmt.Errorf("provider object %q is undefined", b.object)
	}

	obj := objVal.ToObject(b.vm)
	fnVal := obj.Get(method)
	if fnVal == nil || goja.IsUndefined(fnVal) {
		return nil, fmt.Errorf("provider method %s.%s is undefined", b.object, method)
	}

	fn, ok := goja.AssertFunction(fnVal)
	if !ok {
		return nil, fmt.Errorf("provider member %s.%s is not callable", b.object, method)
	}

	jsArgs := make([]goja.Value, 0, len(args))
	for _, arg := range args {
		jsArgs = append(jsArgs, b.vm.ToValue(arg))
	}

	result, err := fn(objVal, jsArgs...)
	if err != nil {
		return nil, jsError(err)
	}

	return b.export(result)
}

// export unwraps promises and converts a JS value to a generic Go value.
func (b *JSBridge) export(v goja.Value) (any, error) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, nil
	}

	if promise, ok := v.Export().(*goja.Promise); ok {
		switch promise.State() {
		case goja.PromiseStateFulfilled:
			return promise.Result().Export(), nil
		case goja.PromiseStateRejected:
			return nil, fmt.Errorf("%v", promise.Result().Export())
		default:
			// No event loop: a pending promise can never settle here.
			return nil, fmt.Errorf("provider returned a pending promise")
		}
	}

	return v.Export(), nil
}

// jsError converts goja exceptions into plain errors with clean messages.
func jsError(err error) error {
	var exc *goja.Exception
	if ok := asException(err, &exc); ok {
		return fmt.Errorf("%s", exc.String())
	}
	return err
}

func asException(err error, target **goja.Exception) bool {
	exc, ok := err.(*goja.Exception) //nolint:errorlint // goja exceptions do not wrap
	if ok {
		*target = exc
	}
	return ok
}

// Compile-time interface check
var _ Invoker = (*JSBridge)(nil)

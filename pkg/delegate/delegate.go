package delegate

// Delegate is a callable that takes no argument.
type Delegate interface {
	Call()
	delegate()
}

// ArgDelegate is a callable that takes a single argument of type T.
type ArgDelegate[T any] interface {
	Call(arg T)
	argDelegate()
}

type funcDelegate struct {
	fn func()
}

func (d *funcDelegate) Call() { d.fn() }
func (*funcDelegate) delegate() {}

type methodDelegate[R any] struct {
	target *R
	method func(*R)
}

func (d *methodDelegate[R]) Call() { d.method(d.target) }
func (*methodDelegate[R]) delegate() {}

type funcArgDelegate[T any] struct {
	fn func(T)
}

func (d *funcArgDelegate[T]) Call(arg T) { d.fn(arg) }
func (*funcArgDelegate[T]) argDelegate() {}

type methodArgDelegate[R, T any] struct {
	target *R
	method func(*R, T)
}

func (d *methodArgDelegate[R, T]) Call(arg T) { d.method(d.target, arg) }
func (*methodArgDelegate[R, T]) argDelegate() {}

// Func wraps a zero-argument function. Panics if fn is nil.
func Func(fn func()) Delegate {
	if fn == nil {
		panic("delegate: nil function")
	}
	return &funcDelegate{fn: fn}
}

// Method binds a zero-argument method to target, e.g. Method(obj, (*Obj).Reset).
// Panics if target or method is nil.
func Method[R any](target *R, method func(*R)) Delegate {
	if target == nil || method == nil {
		panic("delegate: nil target or method")
	}
	return &methodDelegate[R]{target: target, method: method}
}

// FuncArg wraps a one-argument function. Panics if fn is nil.
func FuncArg[T any](fn func(T)) ArgDelegate[T] {
	if fn == nil {
		panic("delegate: nil function")
	}
	return &funcArgDelegate[T]{fn: fn}
}

// MethodArg binds a one-argument method to target, e.g. MethodArg(obj, (*Obj).Set).
// Panics if target or method is nil.
func MethodArg[R, T any](target *R, method func(*R, T)) ArgDelegate[T] {
	if target == nil || method == nil {
		panic("delegate: nil target or method")
	}
	return &methodArgDelegate[R, T]{target: target, method: method}
}

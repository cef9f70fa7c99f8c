// Package delegate wraps plain functions and bound methods behind a single
// invocation contract.
//
// Two arities are supported. Delegate takes no argument and ArgDelegate[T]
// takes one. Each comes in a function form and a method-bound form:
//
//	d := delegate.Func(func() { fmt.Println("tick") })
//	d.Call()
//
//	type Thermostat struct{ last float64 }
//	func (t *Thermostat) OnReading(v float64) { t.last = v }
//
//	th := &Thermostat{}
//	a := delegate.MethodArg(th, (*Thermostat).OnReading)
//	a.Call(21.5) // th.last == 21.5
//
// Method-bound delegates keep a plain back-reference to their target. They do
// not own it, so the target must stay valid for as long as the delegate may be
// called.
//
// The set of implementations is closed: both interfaces carry an unexported
// method, so only the constructors in this package can produce values.
// Every constructor returns a distinct pointer, which gives delegates a stable
// identity that containers can use for removal even though Go functions are
// not comparable.
package delegate

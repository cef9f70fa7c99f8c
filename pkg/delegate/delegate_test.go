package delegate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/eventkit/pkg/delegate"
)

type counter struct {
	hits  int
	total int
}

func (c *counter) Hit()         { c.hits++ }
func (c *counter) Add(n int)    { c.total += n }
func (c *counter) Label(string) {}

func TestFunc(t *testing.T) {
	called := false
	d := delegate.Func(func() { called = true })

	d.Call()
	assert.True(t, called)
}

func TestFuncArg(t *testing.T) {
	var got int
	d := delegate.FuncArg(func(v int) { got = v })

	d.Call(10)
	assert.Equal(t, 10, got)
}

func TestMethod(t *testing.T) {
	c := &counter{}
	d := delegate.Method(c, (*counter).Hit)

	d.Call()
	d.Call()
	assert.Equal(t, 2, c.hits)
}

func TestMethodArg(t *testing.T) {
	c := &counter{}
	d := delegate.MethodArg(c, (*counter).Add)

	d.Call(3)
	d.Call(4)
	assert.Equal(t, 7, c.total)
}

func TestMethod_BackReference(t *testing.T) {
	c := &counter{}
	d := delegate.MethodArg(c, (*counter).Add)

	// The delegate observes later changes to the target rather than a copy.
	c.total = 100
	d.Call(1)
	assert.Equal(t, 101, c.total)
}

func TestIdentity(t *testing.T) {
	fn := func(int) {}
	a := delegate.FuncArg(fn)
	b := delegate.FuncArg(fn)

	assert.True(t, a != b, "each constructor call yields a distinct handle")
	assert.Same(t, a, a)

	c := &counter{}
	m1 := delegate.Method(c, (*counter).Hit)
	m2 := delegate.Method(c, (*counter).Hit)
	assert.True(t, m1 != m2)
}

func TestNilArguments(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil func", func() { delegate.Func(nil) }},
		{"nil func arg", func() { delegate.FuncArg[int](nil) }},
		{"nil method target", func() { delegate.Method[counter](nil, (*counter).Hit) }},
		{"nil method", func() { delegate.Method(&counter{}, nil) }},
		{"nil method arg target", func() { delegate.MethodArg[counter, string](nil, (*counter).Label) }},
		{"nil method arg", func() { delegate.MethodArg[counter, int](&counter{}, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.fn)
		})
	}
}

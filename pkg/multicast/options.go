package multicast

// DefaultCapacity is the number of delegates a dispatcher holds unless
// WithCapacity says otherwise.
const DefaultCapacity = 5

// Option configures a dispatcher.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity sets the maximum number of subscribers. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

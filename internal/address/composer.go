package address

// Options controls the text used between and before address elements.
type Options struct {
	// Separator joins elements which share a line, e.g. organisation and department.
	Separator string
	// POBoxLabel is written in front of a PO box number.
	POBoxLabel string
}

// DefaultOptions returns the en-GB presentation settings.
func DefaultOptions() Options {
	return Options{
		Separator:  DefaultSeparator,
		POBoxLabel: "PO Box ",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Separator == "" {
		o.Separator = d.Separator
	}
	if o.POBoxLabel == "" {
		o.POBoxLabel = d.POBoxLabel
	}
	return o
}

// Source is an address in one of the supported source schemas.
// Each schema keeps its own line packing policy.
type Source interface {
	Compose(opts Options) SimpleAddress
	HasAddress() bool
}

// Composer turns source addresses into simple addresses with fixed options.
// It holds no mutable state and is safe for concurrent use.
type Composer struct {
	opts Options
}

// NewComposer creates a composer. Zero fields in opts fall back to DefaultOptions.
func NewComposer(opts Options) *Composer {
	return &Composer{opts: opts.withDefaults()}
}

// Options returns the settings the composer applies.
func (c *Composer) Options() Options {
	return c.opts
}

// Compose lays out src. A nil src gives an empty address.
func (c *Composer) Compose(src Source) SimpleAddress {
	if src == nil {
		return SimpleAddress{}
	}
	return src.Compose(c.opts)
}

// ComposeAll lays out each source in order.
func (c *Composer) ComposeAll(srcs []Source) []SimpleAddress {
	out := make([]SimpleAddress, len(srcs))
	for i, src := range srcs {
		out[i] = c.Compose(src)
	}
	return out
}

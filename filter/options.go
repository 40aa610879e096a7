package filter

// Delimiter is a context filter delimiter pair. An empty Close ends the
// context at the end of the line.
type Delimiter struct {
	Open  string
	Close string
}

// DefaultDelimiters are string literals and C/C++ comments.
var DefaultDelimiters = []Delimiter{
	{Open: `"`, Close: `"`},
	{Open: "/*", Close: "*/"},
	{Open: "//", Close: ""},
}

type options struct {
	checkComments bool
	addCommands   map[string]string
	dropCommands  []string
	delimiters    []Delimiter
	visibleFirst  bool
}

// Option configures a filter built by New or by a filter constructor.
// Options that do not apply to a filter are ignored by it.
type Option func(*options)

// WithCheckComments makes the TeX filter check the text of % comments.
func WithCheckComments(check bool) Option {
	return func(o *options) {
		o.checkComments = check
	}
}

// WithCommand adds or replaces a TeX command signature.
func WithCommand(name, signature string) Option {
	return func(o *options) {
		if o.addCommands == nil {
			o.addCommands = make(map[string]string)
		}
		o.addCommands[name] = signature
	}
}

// WithoutCommand removes a TeX command from the table.
func WithoutCommand(name string) Option {
	return func(o *options) {
		o.dropCommands = append(o.dropCommands, name)
	}
}

// WithDelimiters replaces the context filter delimiter pairs.
func WithDelimiters(pairs ...Delimiter) Option {
	return func(o *options) {
		o.delimiters = append([]Delimiter(nil), pairs...)
	}
}

// WithVisibleFirst makes the context filter check text outside the
// delimiters instead of inside them.
func WithVisibleFirst(visible bool) Option {
	return func(o *options) {
		o.visibleFirst = visible
	}
}

func applyOptions(opts []Option) *options {
	o := &options{delimiters: DefaultDelimiters}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Package filter hides the parts of a document that are not prose before it
// is spell checked.
//
// Filters work in place on a byte buffer and never change its length: a
// hidden byte is overwritten with a space, so a word found in the filtered
// buffer sits at the same offset in the original text.
//
// Two filters are provided:
//
//   - tex (alias latex) hides TeX commands, the parameters their signature
//     marks as unchecked, and % comments.
//   - context checks only the text between delimiter pairs, by default the
//     string literals and comments of C-like source code.
//
// Filters are combined in a Chain, which runs them by ascending Order:
//
//	tex, _ := filter.New("tex", filter.WithCheckComments(true))
//	chain := filter.NewChain(tex)
//	chain.Process(buf)
//
// Filters keep state between calls to Process so a document can be fed in
// pieces. They are not safe for concurrent use.
package filter

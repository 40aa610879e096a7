// Package ingestion loads word lists into the stem dictionary and expands
// stored stems into their surface forms.
//
// A word list has one entry per line, a word optionally followed by a slash
// and its affix flags:
//
//	3
//	create/ADGS
//	box/S
//	the
//
// An optional leading line holding only the entry count is skipped, as are
// blank lines and lines starting with '#'.
//
// The Pipeline writes parsed stems to a storage.StemRepository in batches and
// records a core.DictionaryInfo naming the affix file they were loaded
// against. ExpandAll walks every stored stem, expands batches concurrently on
// a worker pool and hands the results back in dictionary order.
package ingestion

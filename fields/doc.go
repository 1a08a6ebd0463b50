// Package fields holds the stateless field parsers that run over the raw
// text of a document. Each parser reads the whole text, never mutates it,
// and reports a soft miss with ok == false rather than an error.
//
// Ordered fallbacks are expressed as pattern lists evaluated first match
// wins; later patterns exist only to salvage poorly formatted documents.
package fields

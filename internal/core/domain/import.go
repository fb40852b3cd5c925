package domain

// Import is one statically declared import edge extracted from a module's
// source text. Re-exports with a source clause ("export ... from") are import
// edges too: they are what barrel files are made of.
type Import struct {
	// Specifier is the module reference as written.
	Specifier Specifier

	// TypeOnly marks TypeScript type-only imports, which are erased at
	// compile time and pull in no runtime module graph.
	TypeOnly bool

	// Line and Column locate the specifier token, 1-based.
	Line   int
	Column int
}

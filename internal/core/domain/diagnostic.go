package domain

import "fmt"

// Diagnostic reports one oversized barrel import, anchored to the module
// specifier token of the offending import statement.
type Diagnostic struct {
	File       string
	Line       int
	Column     int
	Specifier  Specifier
	GraphSize  int
	MaxAllowed int
}

// Message returns the human-readable diagnostic text.
func (d Diagnostic) Message() string {
	return fmt.Sprintf(
		"The imported module %q is a barrel file, which leads to importing a module graph of %d modules, which exceeds the maximum allowed size of %d modules",
		string(d.Specifier), d.GraphSize, d.MaxAllowed,
	)
}

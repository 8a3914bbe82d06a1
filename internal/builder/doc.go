// Package builder ties the generator together. It resolves where the project
// goes and what its module path is, plans the tree once, writes it, and then
// runs the toolchain pipeline inside it.
package builder

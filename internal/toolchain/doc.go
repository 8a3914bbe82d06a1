// Package toolchain runs the external commands that finish a generated
// project: module init, the Tailwind package manager steps, air init, tidy
// and format. Steps run in a fixed order, are gated on the project flags, and
// the first failure stops the pipeline. Nothing already done is undone.
package toolchain

// Package runner executes external commands behind a small interface so the
// toolchain pipeline and the git username lookup can be exercised in tests
// without spawning real processes.
package runner

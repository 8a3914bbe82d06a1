// Package project holds the feature-flag configuration of a project to be
// generated and the identifiers derived from its app name. A Config is built
// once from collected input and is never changed afterwards; every
// conditional decision in the scaffold is made from it.
package project

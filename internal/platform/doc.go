// Package platform wraps the filesystem calls whose behavior differs between
// operating systems: permission bits and exclusive file creation.
package platform

// Package cli turns the raw command line of mosaic-submit into an Invocation.
// It performs no I/O beyond printing the usage line: the URL and the file
// path are taken verbatim and only fail later, when they are used.
package cli

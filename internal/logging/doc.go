// Package logging provides leveled logging on top of the standard library
// logger. The level is set once at startup from the CLI flags or the tool
// configuration; there is no environment-variable probing.
package logging

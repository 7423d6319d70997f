// Package project handles project discovery and per-project configuration.
//
// A project is a directory whose name is its slug. Metadata comes from an
// optional project.json; a missing or malformed file degrades to an
// all-defaults configuration rather than failing the build.
package project

// Package config defines the format-agnostic seams of the application: the
// Loader interface that turns a path into a parsed document tree, and the
// optional YAML settings file read by the CLI.
//
// Concrete loaders, such as the one for HCL, live in separate packages.
package config

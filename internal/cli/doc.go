// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates flags and the optional config file into the application's
// internal configuration and runs the matching app use case.
package cli

// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the use cases behind the CLI commands:
// outlining a document tree, showing one test or keyword, and replacing the
// steps of one entity in memory. It is decoupled from any specific
// entrypoint.
package app

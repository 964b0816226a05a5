// Package prometheus exposes HTTP request metrics through client_golang.
//
// The collector registers against a caller-supplied Registerer so that
// tests and the process entrypoint can each own their registry.
package prometheus

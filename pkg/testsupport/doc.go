// Package testsupport holds fixtures shared by renderer, orchestrator and
// server tests: a fixed clock, prebuilt page models and HTML parsing.
package testsupport

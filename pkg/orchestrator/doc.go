// Package orchestrator wires the content → theme → page model → renderer
// pipeline behind a single Generate call. Every dependency can be injected;
// missing ones fall back to the embedded defaults.
package orchestrator

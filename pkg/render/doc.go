// Package render defines the Renderer contract shared by every output format
// and a name-keyed Registry used by the orchestrator and the CLI.
package render

package procsource

import "github.com/markbenv/mpf/internal/types"

// RawProcess is one OS process as seen in the process table, before any
// classification.
type RawProcess struct {
	Pid types.Pid

	// Executable is the full binary path where the platform exposes it,
	// argv[0] otherwise.
	Executable string

	Args []string
}

// Source enumerates the processes visible to the calling user. One call is
// one point-in-time snapshot of the process table.
//
// Implementations skip individual processes whose details cannot be read
// (permission denied, or the process exited between listing and inspection)
// and only fail when the process table itself cannot be listed.
type Source interface {
	Processes() ([]RawProcess, error)
}

package filter

import (
	"github.com/pkg/errors"

	"github.com/markbenv/mpf/internal/types"
)

// Spec is the set of constraints a process must satisfy to be reported.
// Nil fields impose no constraint; the zero Spec matches every recognized
// Mongo process. Built once from user input, never mutated.
type Spec struct {
	Port        *uint16
	ProcessType *types.ProcessKind
	ServerType  *types.ServerRole
}

func (s *Spec) Empty() bool {
	return s.Port == nil && s.ProcessType == nil && s.ServerType == nil
}

// Valid rejects filter combinations that cannot match anything.
func (s *Spec) Valid() (bool, error) {
	if s.ProcessType != nil && *s.ProcessType == types.ProcessKindLegacyShell && s.Port != nil {
		return false, errors.New("cannot use a port filter with the legacy shell")
	}
	return true, nil
}

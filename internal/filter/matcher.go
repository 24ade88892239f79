package filter

import "github.com/markbenv/mpf/internal/types"

// Matches reports whether info satisfies every present constraint in spec.
// Pure predicate: no I/O, no mutation.
//
// Processes that are not a recognized Mongo binary never match, whatever the
// other fields say. The finder reports Mongo processes only, and Unknown is
// not a selectable process type.
func Matches(info types.ProcessInfo, spec *Spec) bool {
	if info.Kind == types.ProcessKindUnknown {
		return false
	}

	if spec.ProcessType != nil && info.Kind != *spec.ProcessType {
		return false
	}

	if spec.Port != nil && (info.Port == nil || *info.Port != *spec.Port) {
		return false
	}

	if spec.ServerType != nil && (info.Role == nil || *info.Role != *spec.ServerType) {
		return false
	}

	return true
}

package scan

import (
	"sort"

	"go.uber.org/zap"

	"github.com/markbenv/mpf/internal/classify"
	"github.com/markbenv/mpf/internal/filter"
	"github.com/markbenv/mpf/internal/procsource"
	"github.com/markbenv/mpf/internal/types"
)

type Scanner struct {
	logger *zap.Logger
	source procsource.Source
}

func NewScanner(rootLogger *zap.Logger, source procsource.Source) *Scanner {
	return &Scanner{logger: rootLogger.Named("scanner"), source: source}
}

// Scan takes one snapshot of the process table and returns every process
// matching spec, ordered by ascending pid. Per-process failures are
// contained inside the source; the only error out of here is a failure to
// enumerate at all.
func (s *Scanner) Scan(spec *filter.Spec) ([]types.ProcessInfo, error) {
	// Sources wrap their own failures; nothing to add here.
	rawProcesses, err := s.source.Processes()
	if err != nil {
		return nil, err
	}

	matched := make([]types.ProcessInfo, 0, len(rawProcesses))

	for _, rawProcess := range rawProcesses {
		info := classify.Classify(rawProcess)

		if info.Kind != types.ProcessKindUnknown {
			s.logger.Debug("Found mongo process",
				zap.Int32("pid", int32(info.Pid)),
				zap.String("kind", info.Kind.Name()),
				zap.Strings("args", info.Args))
		}

		if !filter.Matches(info, spec) {
			continue
		}

		matched = append(matched, info)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Pid < matched[j].Pid })

	return matched, nil
}

package procsource

import (
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	psUtil "github.com/shirou/gopsutil/process"
	"go.uber.org/zap"

	wrappedErrors "github.com/markbenv/mpf/internal/errors"
	"github.com/markbenv/mpf/internal/types"
)

// PsutilSource lists processes through gopsutil, which wraps the native
// process-information API of each platform (sysctl on macOS).
type PsutilSource struct {
	logger *zap.Logger
}

func NewPsutilSource(rootLogger *zap.Logger) *PsutilSource {
	return &PsutilSource{logger: rootLogger.Named("psutil-source")}
}

func (s *PsutilSource) Processes() ([]RawProcess, error) {
	liveProcesses, err := psUtil.Processes()
	if err != nil {
		return nil, wrappedErrors.WrappedErrEnumerateProcesses(err)
	}

	rawProcesses := make([]RawProcess, 0, len(liveProcesses))

	var errs error

	for _, liveProcess := range liveProcesses {
		if int(liveProcess.Pid) == os.Getpid() { // Do not report our own process.
			continue
		}

		args, err := liveProcess.CmdlineSlice()
		if err != nil {
			errs = multierror.Append(errs, errors.WithMessagef(err, "get command line for pid '%d'", liveProcess.Pid))
			s.logger.Debug("Skip process", zap.Int32("pid", liveProcess.Pid), zap.Error(err))
			continue
		}

		executable, err := liveProcess.Exe()
		if err != nil {
			// The executable path often needs more privileges than the
			// command line. Fall back to argv[0].
			if len(args) == 0 {
				errs = multierror.Append(errs, errors.WithMessagef(err, "get executable for pid '%d'", liveProcess.Pid))
				s.logger.Debug("Skip process", zap.Int32("pid", liveProcess.Pid), zap.Error(err))
				continue
			}
			executable = args[0]
		}

		rawProcesses = append(rawProcesses, RawProcess{
			Pid:        types.Pid(liveProcess.Pid),
			Executable: executable,
			Args:       args,
		})
	}

	// Reading nothing at all means we had no permission to inspect any
	// process, which is as fatal as a failed listing.
	if len(rawProcesses) == 0 && errs != nil {
		return nil, wrappedErrors.WrappedErrReadProcessTable(errs)
	}

	return rawProcesses, nil
}

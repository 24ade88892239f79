// +build linux

package procsource

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	wrappedErrors "github.com/markbenv/mpf/internal/errors"
	"github.com/markbenv/mpf/internal/types"
)

// Compile-time interface check.
var _ Source = (*ProcfsSource)(nil)

// ProcfsSource lists processes by walking the /proc pseudo-filesystem.
type ProcfsSource struct {
	logger *zap.Logger
	root   string // "/proc" outside of tests
}

func NewProcfsSource(rootLogger *zap.Logger) *ProcfsSource {
	return &ProcfsSource{logger: rootLogger.Named("procfs-source"), root: "/proc"}
}

func (s *ProcfsSource) Processes() ([]RawProcess, error) {
	entries, err := ioutil.ReadDir(s.root)
	if err != nil {
		return nil, wrappedErrors.WrappedErrEnumerateProcesses(err)
	}

	rawProcesses := make([]RawProcess, 0, len(entries))

	var errs error

	for _, entry := range entries {
		pid, err := strconv.ParseInt(entry.Name(), 10, 32)
		if err != nil { // Not a process directory.
			continue
		}

		if int(pid) == os.Getpid() { // Do not report our own process.
			continue
		}

		rawProcess, err := s.readProcess(types.Pid(pid))
		if err != nil {
			// Permission denied, or the process exited after the listing.
			errs = multierror.Append(errs, errors.WithMessagef(err, "inspect pid '%d'", pid))
			s.logger.Debug("Skip process", zap.Int64("pid", pid), zap.Error(err))
			continue
		}

		rawProcesses = append(rawProcesses, *rawProcess)
	}

	if len(rawProcesses) == 0 && errs != nil {
		return nil, wrappedErrors.WrappedErrReadProcessTable(errs)
	}

	return rawProcesses, nil
}

func (s *ProcfsSource) readProcess(pid types.Pid) (*RawProcess, error) {
	procDir := filepath.Join(s.root, strconv.Itoa(int(pid)))

	data, err := ioutil.ReadFile(filepath.Join(procDir, "cmdline"))
	if err != nil {
		return nil, errors.WithMessage(err, "read cmdline")
	}
	args := splitNullDelimited(data)

	executable, err := os.Readlink(filepath.Join(procDir, "exe"))
	if err != nil {
		// The exe link needs more privileges than cmdline; fall back to
		// argv[0]. Kernel threads have neither and are skipped.
		if len(args) == 0 {
			return nil, errors.WithMessage(err, "read exe link")
		}
		executable = args[0]
	}

	return &RawProcess{Pid: pid, Executable: executable, Args: args}, nil
}

// splitNullDelimited splits /proc/N/cmdline, which separates and terminates
// arguments with null bytes.
func splitNullDelimited(data []byte) []string {
	trimmed := strings.TrimRight(string(data), "\x00")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\x00")
}

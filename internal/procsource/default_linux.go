// +build linux

package procsource

import "go.uber.org/zap"

// DefaultSource returns the process source for the current platform.
func DefaultSource(rootLogger *zap.Logger) Source {
	return NewProcfsSource(rootLogger)
}

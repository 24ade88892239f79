package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	wrappedErrors "github.com/markbenv/mpf/internal/errors"
	"github.com/markbenv/mpf/internal/filter"
	"github.com/markbenv/mpf/internal/logging"
	"github.com/markbenv/mpf/internal/procsource"
	"github.com/markbenv/mpf/internal/reports"
	"github.com/markbenv/mpf/internal/scan"
	"github.com/markbenv/mpf/internal/types"
)

var options struct {
	Port        *uint16 `short:"p" long:"port" description:"Filter: listening port of the mongo daemon to search for"`
	ServerType  string  `long:"server-type" choice:"standalone" choice:"replica-set" choice:"config" choice:"shard" description:"Filter: deployment role"`
	ProcessType string  `short:"t" long:"type" choice:"legacyshell" choice:"mongod" choice:"mongos" description:"Filter: process type"`
	Verbose     bool    `short:"v" long:"verbose" description:"Log recognized and skipped processes"`
	Version     bool    `short:"V" long:"version" description:"Print version and exit"`
}

const (
	version     = "0.1.0"
	exitCodeErr = 1
)

func main() {
	_, err := flags.Parse(&options)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(exitCodeErr)
	}

	if options.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logger, err := logging.NewLogger("mpf", options.Verbose)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(exitCodeErr)
	}

	filterSpec, err := buildFilterSpec()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(exitCodeErr)
	}

	if err := runScan(logger, filterSpec); err != nil {
		logger.Error("Scan failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(exitCodeErr)
	}
}

func buildFilterSpec() (*filter.Spec, error) {
	filterSpec := &filter.Spec{Port: options.Port}

	if options.ProcessType != "" {
		kind, found := types.ProcessKindFromName(options.ProcessType)
		if !found {
			return nil, errors.Errorf("unknown process type '%s'", options.ProcessType)
		}
		filterSpec.ProcessType = &kind
	}

	if options.ServerType != "" {
		role, found := types.ServerRoleFromName(options.ServerType)
		if !found {
			return nil, errors.Errorf("unknown server type '%s'", options.ServerType)
		}
		filterSpec.ServerType = &role
	}

	if ok, err := filterSpec.Valid(); !ok {
		return nil, err
	}

	return filterSpec, nil
}

func runScan(logger *zap.Logger, filterSpec *filter.Spec) error {
	scanner := scan.NewScanner(logger, procsource.DefaultSource(logger))

	matched, err := scanner.Scan(filterSpec)
	if err != nil {
		return err
	}

	// With filters, print just the matching pids (one per line, ready for a
	// debugger attach). Without, dump the full summary as json.
	if !filterSpec.Empty() {
		for _, process := range matched {
			fmt.Println(process.Pid)
		}
		return nil
	}

	return printSummary(logger, matched)
}

func printSummary(logger *zap.Logger, matched []types.ProcessInfo) error {
	reportList := []reports.Report{reports.NewScanReport(matched)}

	hostReport, err := reports.NewHostReport()
	if err != nil {
		// Host context is nice to have; a scan without it is still a scan.
		logger.Debug("Skip host report", zap.Error(wrappedErrors.WrappedErrNewHostReport(err)))
	} else {
		reportList = append(reportList, hostReport)
	}

	merged, err := reports.MergeReports(reportList...)
	if err != nil {
		return wrappedErrors.WrappedErrMergeReports(err)
	}

	summaryJson, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "marshal summary")
	}

	fmt.Println(string(summaryJson))
	return nil
}

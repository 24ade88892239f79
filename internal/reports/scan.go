package reports

import (
	"encoding/json"

	"gopkg.in/guregu/null.v3"

	"github.com/markbenv/mpf/internal/types"
)

type MongoDServerInfo struct {
	Pid            int32       `json:"pid"`
	Port           null.Int    `json:"port"`
	ServerType     string      `json:"server_type"`
	ReplicaSetName null.String `json:"replica_set_name"`
}

type MongoSServerInfo struct {
	Pid  int32    `json:"pid"`
	Port null.Int `json:"port"`
}

// ScanReport groups one scan's recognized Mongo processes by kind, the
// shape printed when no filters are given.
type ScanReport struct {
	MongoD []MongoDServerInfo `json:"mongod"`
	MongoS []MongoSServerInfo `json:"mongos"`
	Shell  []int32            `json:"shell"`
}

func NewScanReport(processes []types.ProcessInfo) *ScanReport {
	scanReport := &ScanReport{
		MongoD: make([]MongoDServerInfo, 0, len(processes)),
		MongoS: make([]MongoSServerInfo, 0, len(processes)),
		Shell:  make([]int32, 0, len(processes)),
	}

	for _, process := range processes {
		switch process.Kind {
		case types.ProcessKindMongoD:
			serverType := ""
			if process.Role != nil {
				serverType = process.Role.Name()
			}
			scanReport.MongoD = append(scanReport.MongoD, MongoDServerInfo{
				Pid:            int32(process.Pid),
				Port:           nullPort(process.Port),
				ServerType:     serverType,
				ReplicaSetName: nullString(process.ReplicaSetName),
			})
		case types.ProcessKindMongoS:
			scanReport.MongoS = append(scanReport.MongoS, MongoSServerInfo{
				Pid:  int32(process.Pid),
				Port: nullPort(process.Port),
			})
		case types.ProcessKindLegacyShell:
			scanReport.Shell = append(scanReport.Shell, int32(process.Pid))
		}
	}

	return scanReport
}

func (s *ScanReport) ReportName() string {
	return "scan-report"
}

func (s *ScanReport) DumpReport() ([]byte, error) {
	return json.Marshal(s)
}

func nullPort(port *uint16) null.Int {
	if port == nil {
		return null.Int{}
	}
	return null.IntFrom(int64(*port))
}

func nullString(value string) null.String {
	if value == "" {
		return null.String{}
	}
	return null.StringFrom(value)
}

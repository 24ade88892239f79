package reports

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markbenv/mpf/internal/types"
)

func uint16Ptr(v uint16) *uint16 { return &v }

func rolePtr(v types.ServerRole) *types.ServerRole { return &v }

func TestNewScanReport_GroupsByKind(t *testing.T) {
	processes := []types.ProcessInfo{
		{Pid: 100, Kind: types.ProcessKindMongoD, Port: uint16Ptr(27017), Role: rolePtr(types.ServerRoleReplicaSet), ReplicaSetName: "rs0"},
		{Pid: 200, Kind: types.ProcessKindMongoS, Port: uint16Ptr(27018)},
		{Pid: 300, Kind: types.ProcessKindLegacyShell},
	}

	scanReport := NewScanReport(processes)

	require.Len(t, scanReport.MongoD, 1)
	assert.Equal(t, int32(100), scanReport.MongoD[0].Pid)
	assert.Equal(t, int64(27017), scanReport.MongoD[0].Port.Int64)
	assert.Equal(t, "replica-set", scanReport.MongoD[0].ServerType)
	assert.Equal(t, "rs0", scanReport.MongoD[0].ReplicaSetName.String)

	require.Len(t, scanReport.MongoS, 1)
	assert.Equal(t, int32(200), scanReport.MongoS[0].Pid)

	require.Len(t, scanReport.Shell, 1)
	assert.Equal(t, int32(300), scanReport.Shell[0])
}

func TestScanReport_AbsentFieldsMarshalAsNull(t *testing.T) {
	processes := []types.ProcessInfo{
		{Pid: 100, Kind: types.ProcessKindMongoD, Role: rolePtr(types.ServerRoleStandalone)},
	}

	reportDump, err := NewScanReport(processes).DumpReport()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(reportDump, &decoded))

	mongod := decoded["mongod"].([]interface{})[0].(map[string]interface{})
	assert.Nil(t, mongod["port"])
	assert.Nil(t, mongod["replica_set_name"])
	assert.Equal(t, "standalone", mongod["server_type"])
}

func TestScanReport_EmptyScanMarshalsEmptyGroups(t *testing.T) {
	reportDump, err := NewScanReport(nil).DumpReport()
	require.NoError(t, err)

	assert.JSONEq(t, `{"mongod": [], "mongos": [], "shell": []}`, string(reportDump))
}

func TestMergeReports_ScanReportKeys(t *testing.T) {
	merged, err := MergeReports(NewScanReport(nil))
	require.NoError(t, err)

	assert.Contains(t, merged, "mongod")
	assert.Contains(t, merged, "mongos")
	assert.Contains(t, merged, "shell")
}

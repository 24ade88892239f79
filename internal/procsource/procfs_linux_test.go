// +build linux

package procsource

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/markbenv/mpf/internal/types"
)

func writeFixtureProcess(t *testing.T, root string, pid int, args ...string) {
	t.Helper()

	procDir := filepath.Join(root, strconv.Itoa(pid))
	require.NoError(t, os.MkdirAll(procDir, 0755))

	cmdline := ""
	for _, arg := range args {
		cmdline += arg + "\x00"
	}
	require.NoError(t, ioutil.WriteFile(filepath.Join(procDir, "cmdline"), []byte(cmdline), 0644))
}

func newFixtureSource(root string) *ProcfsSource {
	source := NewProcfsSource(zap.NewNop())
	source.root = root
	return source
}

func TestProcfsSource_Processes(t *testing.T) {
	root := t.TempDir()
	writeFixtureProcess(t, root, 100, "/usr/bin/mongod", "--port", "27017")
	writeFixtureProcess(t, root, 200, "bash")

	// Non-pid entries in /proc must be ignored.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sys"), 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(root, "uptime"), []byte("1 1"), 0644))

	rawProcesses, err := newFixtureSource(root).Processes()
	require.NoError(t, err)
	require.Len(t, rawProcesses, 2)

	byPid := make(map[types.Pid]RawProcess, len(rawProcesses))
	for _, rawProcess := range rawProcesses {
		byPid[rawProcess.Pid] = rawProcess
	}

	mongod, found := byPid[100]
	require.True(t, found)
	// No exe link in the fixture tree, so argv[0] stands in.
	assert.Equal(t, "/usr/bin/mongod", mongod.Executable)
	assert.Equal(t, []string{"/usr/bin/mongod", "--port", "27017"}, mongod.Args)

	_, found = byPid[200]
	assert.True(t, found)
}

func TestProcfsSource_SkipsVanishedProcess(t *testing.T) {
	root := t.TempDir()
	writeFixtureProcess(t, root, 100, "/usr/bin/mongos", "--port", "27018")

	// A pid directory without a cmdline file looks like a process that
	// exited between listing and inspection.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "300"), 0755))

	rawProcesses, err := newFixtureSource(root).Processes()
	require.NoError(t, err)
	require.Len(t, rawProcesses, 1)
	assert.Equal(t, types.Pid(100), rawProcesses[0].Pid)
}

func TestProcfsSource_SkipsKernelThreads(t *testing.T) {
	root := t.TempDir()
	writeFixtureProcess(t, root, 100, "/usr/bin/mongod")
	// Kernel threads expose an empty cmdline and no exe link.
	writeFixtureProcess(t, root, 2)

	rawProcesses, err := newFixtureSource(root).Processes()
	require.NoError(t, err)
	require.Len(t, rawProcesses, 1)
	assert.Equal(t, types.Pid(100), rawProcesses[0].Pid)
}

func TestProcfsSource_MissingRootIsFatal(t *testing.T) {
	source := newFixtureSource(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := source.Processes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumerate processes")
}

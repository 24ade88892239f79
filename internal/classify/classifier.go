package classify

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/markbenv/mpf/internal/procsource"
	"github.com/markbenv/mpf/internal/types"
)

// Known binary names, matched case-sensitively against the executable's
// base name.
const (
	binaryNameMongoD      = "mongod"
	binaryNameMongoS      = "mongos"
	binaryNameLegacyShell = "mongo"
)

// Classify derives a ProcessInfo from a raw process record. It is total:
// unrecognized executables yield ProcessKindUnknown rather than an error,
// and malformed flag values leave the matching field unset. Dropping
// Unknown processes is the matcher's job, not ours.
func Classify(rawProcess procsource.RawProcess) types.ProcessInfo {
	executable := filepath.Base(rawProcess.Executable)

	info := types.ProcessInfo{
		Pid:        rawProcess.Pid,
		Executable: executable,
		Args:       rawProcess.Args,
		Kind:       kindFromExecutable(executable),
	}

	if info.Kind == types.ProcessKindUnknown {
		return info
	}

	info.Port = parsePort(rawProcess.Args)

	// Role flags only mean anything on a mongod command line.
	if info.Kind == types.ProcessKindMongoD {
		role, replicaSetName := parseRole(rawProcess.Args)
		info.Role = &role
		info.ReplicaSetName = replicaSetName
	}

	return info
}

func kindFromExecutable(executable string) types.ProcessKind {
	switch executable {
	case binaryNameMongoD:
		return types.ProcessKindMongoD
	case binaryNameMongoS:
		return types.ProcessKindMongoS
	case binaryNameLegacyShell:
		return types.ProcessKindLegacyShell
	default:
		return types.ProcessKindUnknown
	}
}

// parsePort extracts a --port value in the 16-bit port range. Missing or
// malformed values yield nil, never an error.
func parsePort(args []string) *uint16 {
	value, found := findArgValue("--port", args)
	if !found {
		return nil
	}

	port, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return nil
	}

	port16 := uint16(port)
	return &port16
}

// parseRole infers the deployment role of a mongod. Precedence is fixed:
// config server before shard before replica set before standalone, so a
// malformed command line carrying several role flags still classifies
// deterministically.
func parseRole(args []string) (types.ServerRole, string) {
	replicaSetName, hasReplSet := findArgValue("--replSet", args)

	switch {
	case hasArg("--configsvr", args):
		return types.ServerRoleConfigServer, replicaSetName
	case hasArg("--shardsvr", args):
		return types.ServerRoleShard, replicaSetName
	case hasReplSet:
		return types.ServerRoleReplicaSet, replicaSetName
	default:
		return types.ServerRoleStandalone, ""
	}
}

// findArgValue returns the value of a long option given either as
// "--name value" or "--name=value". Argument order is not significant.
func findArgValue(name string, args []string) (string, bool) {
	for i, arg := range args {
		if arg == name {
			if i+1 < len(args) {
				return args[i+1], true
			}
			return "", false
		}
		if strings.HasPrefix(arg, name+"=") {
			return strings.TrimPrefix(arg, name+"="), true
		}
	}
	return "", false
}

func hasArg(name string, args []string) bool {
	for _, arg := range args {
		if arg == name || strings.HasPrefix(arg, name+"=") {
			return true
		}
	}
	return false
}

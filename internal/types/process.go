package types

// Pid identifies a running process. It is unique among live processes and
// not reused within the lifetime of a single scan.
type Pid int32

type ProcessKind int

const (
	ProcessKindUnknown ProcessKind = iota
	ProcessKindMongoD
	ProcessKindMongoS
	ProcessKindLegacyShell
)

var processKindNames = map[ProcessKind]string{
	ProcessKindMongoD:      "mongod",
	ProcessKindMongoS:      "mongos",
	ProcessKindLegacyShell: "legacyshell",
}

func (pk ProcessKind) Name() string {
	name, found := processKindNames[pk]
	if !found {
		return "unknown"
	}
	return name
}

func ProcessKindFromName(name string) (ProcessKind, bool) {
	for kind, kindName := range processKindNames {
		if kindName == name {
			return kind, true
		}
	}
	return ProcessKindUnknown, false
}

type ServerRole int

const (
	ServerRoleStandalone ServerRole = iota
	ServerRoleReplicaSet
	ServerRoleConfigServer
	ServerRoleShard
)

var serverRoleNames = map[ServerRole]string{
	ServerRoleStandalone:   "standalone",
	ServerRoleReplicaSet:   "replica-set",
	ServerRoleConfigServer: "config",
	ServerRoleShard:        "shard",
}

func (sr ServerRole) Name() string {
	name, found := serverRoleNames[sr]
	if !found {
		return ""
	}
	return name
}

func ServerRoleFromName(name string) (ServerRole, bool) {
	for role, roleName := range serverRoleNames {
		if roleName == name {
			return role, true
		}
	}
	return ServerRoleStandalone, false
}

// ProcessInfo describes one running process after argument classification.
// Instances are built fresh on every scan and never mutated afterwards.
type ProcessInfo struct {
	Pid        Pid
	Executable string   // base name of the running binary
	Args       []string // original command line, kept for diagnostics

	Kind ProcessKind

	// Port is the port the process was launched to listen on, nil when no
	// well-formed --port argument was found.
	Port *uint16

	// Role is only derived for mongod processes; nil for everything else.
	Role           *ServerRole
	ReplicaSetName string
}

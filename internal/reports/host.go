package reports

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/host"

	localHost "github.com/markbenv/mpf/internal/host"
)

// HostReport carries enough host context to tell scan outputs from
// different machines apart.
type HostReport struct {
	MachineId       string `json:"machine_id"`
	Hostname        string `json:"hostname"`
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	KernelVersion   string `json:"kernel_version"`
}

func NewHostReport() (*HostReport, error) {
	machineId, err := localHost.MachineId()
	if err != nil {
		return nil, err
	}

	hostInfo, err := host.Info()
	if err != nil {
		return nil, errors.WithMessage(err, "get host info")
	}

	return &HostReport{
		MachineId:       machineId,
		Hostname:        hostInfo.Hostname,
		OS:              hostInfo.OS,
		Platform:        hostInfo.Platform,
		PlatformVersion: hostInfo.PlatformVersion,
		KernelVersion:   hostInfo.KernelVersion,
	}, nil
}

func (h *HostReport) ReportName() string {
	return "host-report"
}

func (h *HostReport) DumpReport() ([]byte, error) {
	return json.Marshal(h)
}

package harness

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

func (s SysInfo) String() string {
	return fmt.Sprintf("platform: %s, cpu: %s, ram: %s", s.Platform, s.CPU, s.RAM)
}

// GetSysInfo queries the host; fields it cannot read stay "unknown".
func GetSysInfo() SysInfo {
	info := SysInfo{Platform: "unknown", CPU: "unknown", RAM: "unknown"}
	if hostStat, err := host.Info(); err == nil {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}
	return info
}

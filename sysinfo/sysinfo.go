// Package sysinfo collects the host metrics the installed banner would show,
// without shelling out, for previewing before an install.
package sysinfo

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

// Summary is a point in time snapshot of the metrics shown on the banner.
type Summary struct {
	Hostname    string
	OS          string
	Kernel      string
	Uptime      time.Duration
	MemoryUsed  uint64
	MemoryTotal uint64
	DiskUsed    uint64
	DiskTotal   uint64
	DiskPercent float64
	Load1       float64
	Load5       float64
	Load15      float64
	Addresses   []string
}

// Collect gathers a Summary for the local host.
func Collect() (*Summary, error) {
	info, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to get host info: %w", err)
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to get memory info: %w", err)
	}

	s := &Summary{
		Hostname:    info.Hostname,
		OS:          fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion),
		Kernel:      fmt.Sprintf("%s %s", info.OS, info.KernelVersion),
		Uptime:      time.Duration(info.Uptime) * time.Second,
		MemoryUsed:  vm.Used,
		MemoryTotal: vm.Total,
	}

	if du, err := disk.Usage("/"); err == nil {
		s.DiskUsed = du.Used
		s.DiskTotal = du.Total
		s.DiskPercent = du.UsedPercent
	}

	if avg, err := load.Avg(); err == nil {
		s.Load1 = avg.Load1
		s.Load5 = avg.Load5
		s.Load15 = avg.Load15
	}

	if ifaces, err := net.Interfaces(); err == nil {
		for _, iface := range ifaces {
			if isLoopback(iface) {
				continue
			}
			for _, addr := range iface.Addrs {
				s.Addresses = append(s.Addresses, addr.Addr)
			}
		}
	}

	return s, nil
}

func isLoopback(iface net.InterfaceStat) bool {
	for _, flag := range iface.Flags {
		if flag == "loopback" {
			return true
		}
	}
	return false
}

// String renders the summary in the same layout as the generated banner.
func (s *Summary) String() string {
	const mib = 1024 * 1024
	const gib = 1024 * mib
	out := fmt.Sprintf("=== %s ===\n\n", s.Hostname)
	out += fmt.Sprintf("  OS:       %s\n", s.OS)
	out += fmt.Sprintf("  Kernel:   %s\n", s.Kernel)
	out += fmt.Sprintf("  Uptime:   %s\n", s.Uptime.Round(time.Minute))
	out += fmt.Sprintf("  Memory:   %d MiB of %d MiB\n", s.MemoryUsed/mib, s.MemoryTotal/mib)
	if s.DiskTotal > 0 {
		out += fmt.Sprintf("  Disk /:   %.1fG of %.1fG (%.0f%% used)\n", float64(s.DiskUsed)/gib, float64(s.DiskTotal)/gib, s.DiskPercent)
	}
	out += fmt.Sprintf("  Load:     %.2f %.2f %.2f\n", s.Load1, s.Load5, s.Load15)
	for _, addr := range s.Addresses {
		out += fmt.Sprintf("  Address:  %s\n", addr)
	}
	return out
}

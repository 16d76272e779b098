package sysinfo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dynmotd/dynmotd/sysinfo"
)

func TestSummaryString(t *testing.T) {
	s := &sysinfo.Summary{
		Hostname:    "web01",
		OS:          "debian 12.5",
		Kernel:      "linux 6.1.0-18-amd64",
		Uptime:      26*time.Hour + 31*time.Minute,
		MemoryUsed:  512 * 1024 * 1024,
		MemoryTotal: 2048 * 1024 * 1024,
		DiskUsed:    10 * 1024 * 1024 * 1024,
		DiskTotal:   40 * 1024 * 1024 * 1024,
		DiskPercent: 25,
		Load1:       0.5,
		Load5:       0.25,
		Load15:      0.1,
		Addresses:   []string{"192.0.2.10/24"},
	}

	out := s.String()
	assert.Contains(t, out, "=== web01 ===")
	assert.Contains(t, out, "OS:       debian 12.5")
	assert.Contains(t, out, "Memory:   512 MiB of 2048 MiB")
	assert.Contains(t, out, "Disk /:   10.0G of 40.0G (25% used)")
	assert.Contains(t, out, "Load:     0.50 0.25 0.10")
	assert.Contains(t, out, "Address:  192.0.2.10/24")
}

func TestSummaryStringSkipsUnknownDisk(t *testing.T) {
	s := &sysinfo.Summary{Hostname: "bare"}
	assert.NotContains(t, s.String(), "Disk /")
}

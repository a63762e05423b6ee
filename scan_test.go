package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/gosuri/uilive"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedUsage(total, free uint64) usageFunc {
	return func(string) (*disk.UsageStat, error) {
		return &disk.UsageStat{Total: total, Free: free}, nil
	}
}

func TestCollectMountsDedupesMountpoints(t *testing.T) {
	parts := []disk.PartitionStat{
		{Device: "/dev/sda1", Mountpoint: "/data", Fstype: "ext4"},
		{Device: "/dev/sdb1", Mountpoint: "/data", Fstype: "ext4"},
		{Device: "/dev/sdc1", Mountpoint: "/other", Fstype: "ext4"},
	}

	drives := collectMounts(parts, fixedUsage(100, 50))

	require.Len(t, drives, 2)
	assert.Equal(t, "/dev/sda1", drives[0].Device, "first record wins")
	assert.Equal(t, "/other", drives[1].Mountpoint)
}

func TestCollectMountsSkipsFailedUsage(t *testing.T) {
	parts := []disk.PartitionStat{
		{Device: "/dev/sda1", Mountpoint: "/good", Fstype: "ext4"},
		{Device: "/dev/sdb1", Mountpoint: "/bad", Fstype: "ext4"},
	}
	usage := func(path string) (*disk.UsageStat, error) {
		if path == "/bad" {
			return nil, errors.New("permission denied")
		}
		return &disk.UsageStat{Total: 10}, nil
	}

	drives := collectMounts(parts, usage)

	require.Len(t, drives, 1)
	assert.Equal(t, "/good", drives[0].Mountpoint)
}

func TestCollectMountsCeiling(t *testing.T) {
	parts := make([]disk.PartitionStat, 0, maxDrives+50)
	for i := 0; i < maxDrives+50; i++ {
		parts = append(parts, disk.PartitionStat{
			Device:     fmt.Sprintf("/dev/sd%c%d", 'a'+i%26, i),
			Mountpoint: fmt.Sprintf("/mnt/disk%d", i),
			Fstype:     "ext4",
		})
	}

	drives := collectMounts(parts, fixedUsage(1, 0))

	assert.Len(t, drives, maxDrives)
}

func TestScanProgressClearErasesStatusLine(t *testing.T) {
	var buf bytes.Buffer
	w := uilive.New()
	w.Out = &buf
	p := &scanProgress{w: w}

	p.update("Scanning mounted filesystems...")
	written := buf.Len()
	p.clear()

	assert.Greater(t, buf.Len(), written, "clearing flushes real output, not a no-op")
	assert.Contains(t, buf.String()[written:], "[2K", "the status line is erased before the report prints")
}

func TestScanProgressWithoutTerminalIsNoop(t *testing.T) {
	p := &scanProgress{}
	p.update("Scanning mounted filesystems...")
	p.clear()
}

func TestSortDrivesByTotalDescending(t *testing.T) {
	drives := []DriveInfo{
		{Device: "a", TotalBytes: 10},
		{Device: "b", TotalBytes: 50},
		{Device: "c", TotalBytes: 30},
	}

	sortDrives(drives)

	totals := []uint64{drives[0].TotalBytes, drives[1].TotalBytes, drives[2].TotalBytes}
	assert.Equal(t, []uint64{50, 30, 10}, totals)
}

func TestSortDrivesKeepsDiscoveryOrderOnTies(t *testing.T) {
	drives := []DriveInfo{
		{Device: "first", TotalBytes: 20},
		{Device: "second", TotalBytes: 20},
		{Device: "big", TotalBytes: 99},
	}

	sortDrives(drives)

	assert.Equal(t, "big", drives[0].Device)
	assert.Equal(t, "first", drives[1].Device)
	assert.Equal(t, "second", drives[2].Device)
}

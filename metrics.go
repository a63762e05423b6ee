package main

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// formatBytes renders a byte count in human units, whole numbers for plain
// bytes and two decimals from KB up. Anything past TB stays in TB.
func formatBytes(n uint64) string {
	size := float64(n)
	unit := 0
	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%.0f %s", size, byteUnits[unit])
	}
	return fmt.Sprintf("%.2f %s", size, byteUnits[unit])
}

// usagePercent is used/total as a percentage, where used = total - available.
// A zero total reports 0 rather than dividing by it.
func usagePercent(total, available uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(total-available) / float64(total) * 100
}

// newDriveInfo normalizes a gopsutil usage snapshot into a DriveInfo.
// gopsutil's own UsedPercent is used/(used+free); the report wants
// used = total - available over total, so the percentages are derived here.
func newDriveInfo(p disk.PartitionStat, dt DriveType, u *disk.UsageStat) DriveInfo {
	total := u.Total
	avail := u.Free

	inodesTotal := u.InodesTotal
	var inodesUsed uint64
	if inodesTotal > 0 && u.InodesFree <= inodesTotal {
		inodesUsed = inodesTotal - u.InodesFree
	}

	return DriveInfo{
		Mountpoint:        p.Mountpoint,
		Fstype:            p.Fstype,
		Device:            p.Device,
		Opts:              strings.Join(p.Opts, ","),
		TotalBytes:        total,
		UsedBytes:         total - avail,
		AvailBytes:        avail,
		UsagePercent:      usagePercent(total, avail),
		InodesTotal:       inodesTotal,
		InodesUsed:        inodesUsed,
		InodeUsagePercent: usagePercent(inodesTotal, inodesTotal-inodesUsed),
		DriveType:         dt,
	}
}

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/shirou/gopsutil/v3/disk"
)

// maxDrives caps how many records a run collects; mounts past the ceiling
// are silently not reported.
const maxDrives = 100

type usageFunc func(path string) (*disk.UsageStat, error)

// collectMounts turns the raw mount list into DriveInfo records: classify,
// drop duplicates of a mount point (first record wins), query capacity, and
// skip any single mount whose capacity query fails.
func collectMounts(parts []disk.PartitionStat, usage usageFunc) []DriveInfo {
	drives := make([]DriveInfo, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		if len(drives) >= maxDrives {
			break
		}
		dt, ok := classifyMount(p.Device, p.Mountpoint, p.Fstype)
		if !ok {
			continue
		}
		if _, dup := seen[p.Mountpoint]; dup {
			continue
		}
		seen[p.Mountpoint] = struct{}{}

		u, err := usage(p.Mountpoint)
		if err != nil {
			continue
		}
		drives = append(drives, newDriveInfo(p, dt, u))
	}
	return drives
}

// sortDrives orders by descending total capacity; equal totals keep their
// discovery order.
func sortDrives(drives []DriveInfo) {
	sort.SliceStable(drives, func(i, j int) bool {
		return drives[i].TotalBytes > drives[j].TotalBytes
	})
}

// scanProgress drives the live status line shown while the mount table is
// read. Every call is a no-op when the report is not going to a terminal.
type scanProgress struct {
	w *uilive.Writer
}

func newScanProgress() *scanProgress {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return &scanProgress{}
	}
	return &scanProgress{w: uilive.New()}
}

func (p *scanProgress) update(format string, args ...any) {
	if p.w == nil {
		return
	}
	fmt.Fprintf(p.w, format+"\n", args...)
	p.w.Flush()
}

// clear overwrites the status line so the report starts on a clean screen.
// uilive only erases on a flush that carries content, so the write here
// must not be empty; a bare carriage return erases the line without
// leaving a blank one behind.
func (p *scanProgress) clear() {
	if p.w == nil {
		return
	}
	fmt.Fprint(p.w, "\r")
	p.w.Flush()
}

// scanDrives runs the whole pipeline: mount table, classification, capacity,
// enrichment, GVFS cloud mounts, sort. Only the mount table itself is fatal.
func scanDrives() ([]DriveInfo, error) {
	progress := newScanProgress()
	progress.update("Scanning mounted filesystems...")

	parts, err := disk.Partitions(true)
	if err != nil {
		return nil, fmt.Errorf("reading mount table: %w", err)
	}
	progress.update("Scanning mounted filesystems... (%d mount entries)", len(parts))

	drives := collectMounts(parts, disk.Usage)
	for i := range drives {
		enrichDrive(&drives[i])
	}
	drives = appendCloudDrives(drives, disk.Usage)
	sortDrives(drives)

	progress.clear()
	return drives, nil
}

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var driveHeader = color.New(color.FgYellow, color.Bold)

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func orNoData(s string) string {
	if s == "" {
		return "No data"
	}
	return s
}

// printReport writes one block per drive plus a trailing count. Health is
// only shown for local drives and only when the scan ran with elevated
// privilege, since smartctl needs it.
func printReport(w io.Writer, drives []DriveInfo, termWidth int, showHealth bool) {
	fmt.Fprintln(w)
	if len(drives) == 0 {
		fmt.Fprintln(w, "No drives found.")
		return
	}

	for i := range drives {
		d := &drives[i]
		fmt.Fprintf(w, "  %s\n", driveHeader.Sprintf("Drive %d", i+1))
		fmt.Fprintf(w, "  Type:          %s\n", d.DriveType)
		if d.Cloud {
			fmt.Fprintf(w, "  Cloud service: %s\n", orDash(d.CloudService))
		}
		fmt.Fprintf(w, "  Mount point:   %s\n", d.Mountpoint)
		fmt.Fprintf(w, "  Filesystem:    %s\n", d.Fstype)
		fmt.Fprintf(w, "  Device:        %s\n", d.Device)
		fmt.Fprintf(w, "  UUID:          %s\n", orDash(d.UUID))
		fmt.Fprintf(w, "  Label:         %s\n", orDash(d.Label))
		fmt.Fprintf(w, "  Options:       %s\n", orDash(d.Opts))
		fmt.Fprintf(w, "  Total size:    %s\n", formatBytes(d.TotalBytes))
		fmt.Fprintf(w, "  Used:          %s\n", formatBytes(d.UsedBytes))
		fmt.Fprintf(w, "  Available:     %s\n", formatBytes(d.AvailBytes))
		fmt.Fprintf(w, "  Inodes:        %.1f%% used (%d of %d)\n",
			d.InodeUsagePercent, d.InodesUsed, d.InodesTotal)
		if showHealth && d.DriveType == DriveLocal {
			fmt.Fprintf(w, "  Health:        %s\n", orNoData(d.Health))
		}
		fmt.Fprintf(w, "  %s\n\n", barLine(d.UsagePercent, termWidth))
	}

	fmt.Fprintf(w, "A total of %d drives found.\n", len(drives))
}

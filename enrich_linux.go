//go:build linux

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	byUUIDDir  = "/dev/disk/by-uuid"
	byLabelDir = "/dev/disk/by-label"
)

// enrichDrive attaches UUID, label and SMART health to a record. Every
// lookup is best-effort: a miss leaves the field empty and the record valid.
func enrichDrive(d *DriveInfo) {
	d.UUID = resolveDeviceAlias(byUUIDDir, d.Device)
	d.Label = resolveDeviceAlias(byLabelDir, d.Device)
	if d.DriveType == DriveLocal && os.Geteuid() == 0 {
		d.Health = queryHealth(d.Device)
	}
}

// resolveDeviceAlias walks a symlink farm like /dev/disk/by-uuid and returns
// the entry whose canonical target is the given device, or "".
func resolveDeviceAlias(dir, device string) string {
	target, err := filepath.EvalSymlinks(device)
	if err != nil {
		target = device
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		resolved, err := filepath.EvalSymlinks(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		if resolved == target {
			return e.Name()
		}
	}
	return ""
}

var (
	numberedPartSuffix = regexp.MustCompile(`p[0-9]+$`)
	plainPartSuffix    = regexp.MustCompile(`[0-9]+$`)
)

// parentDevice strips the partition suffix so smartctl is asked about the
// disk, not the partition: /dev/sda1 -> /dev/sda, /dev/nvme0n1p2 -> /dev/nvme0n1.
func parentDevice(device string) string {
	name := filepath.Base(device)
	switch {
	case strings.HasPrefix(name, "nvme"), strings.HasPrefix(name, "mmcblk"):
		name = numberedPartSuffix.ReplaceAllString(name, "")
	case strings.HasPrefix(name, "sd"), strings.HasPrefix(name, "hd"), strings.HasPrefix(name, "vd"):
		name = plainPartSuffix.ReplaceAllString(name, "")
	}
	return filepath.Join(filepath.Dir(device), name)
}

// queryHealth runs smartctl -H once and reports the verdict. smartctl exits
// non-zero for unhealthy drives while still printing one, so the output is
// parsed regardless of the exit status.
func queryHealth(device string) string {
	out, _ := exec.Command("smartctl", "-H", parentDevice(device)).CombinedOutput()
	text := string(out)
	switch {
	case strings.Contains(text, "PASSED"), strings.Contains(text, ": OK"):
		return "PASSED"
	case strings.Contains(text, "FAILED"):
		return "FAILED"
	}
	return ""
}

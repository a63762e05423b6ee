package main

import "strings"

// skipFsTypes are pseudo/virtual filesystems that never represent a drive.
// fuse.gvfsd-fuse is in here on purpose: GVFS mounts are picked up by the
// directory scan instead, so the aggregate fuse mount would only duplicate
// them with partial data.
var skipFsTypes = map[string]struct{}{
	"proc":            {},
	"sysfs":           {},
	"devpts":          {},
	"tmpfs":           {},
	"devtmpfs":        {},
	"securityfs":      {},
	"cgroup":          {},
	"cgroup2":         {},
	"pstore":          {},
	"efivarfs":        {},
	"autofs":          {},
	"debugfs":         {},
	"tracefs":         {},
	"configfs":        {},
	"fusectl":         {},
	"binfmt_misc":     {},
	"bpf":             {},
	"mqueue":          {},
	"hugetlbfs":       {},
	"ramfs":           {},
	"fuse.portal":     {},
	"fuse.gvfsd-fuse": {},
}

var physicalPrefixes = []string{
	"/dev/sd",
	"/dev/nvme",
	"/dev/hd",
	"/dev/mmcblk",
	"/dev/vd",
}

var networkFsTypes = map[string]struct{}{
	"nfs":         {},
	"nfs4":        {},
	"cifs":        {},
	"smb":         {},
	"smb3":        {},
	"smbfs":       {},
	"sshfs":       {},
	"fuse.sshfs":  {},
	"fuse.rclone": {},
}

func isPhysicalDevice(device string) bool {
	for _, prefix := range physicalPrefixes {
		if strings.HasPrefix(device, prefix) {
			return true
		}
	}
	return false
}

// isNetworkDevice matches UNC-style sources (//server/share, \\server\share)
// and NFS-style host:path sources.
func isNetworkDevice(device string) bool {
	return strings.HasPrefix(device, "//") ||
		strings.HasPrefix(device, `\\`) ||
		strings.Contains(device, ":")
}

func isNetworkFs(fstype string) bool {
	if _, ok := networkFsTypes[fstype]; ok {
		return true
	}
	return strings.HasPrefix(fstype, "fuse.")
}

// isTransientMount rejects AppImage loop mounts and anything mounted under
// /tmp, which only exists for the lifetime of some process.
func isTransientMount(device, mountpoint string) bool {
	return strings.HasPrefix(device, "/tmp/.mount_") ||
		strings.HasPrefix(mountpoint, "/tmp/.mount_") ||
		strings.HasPrefix(mountpoint, "/tmp/") ||
		strings.HasPrefix(device, "/dev/loop")
}

// classifyMount decides whether a mount-table entry is a reportable drive
// and which category it belongs to. The order of the checks matters: a
// device matching both the physical and the network heuristics is Local,
// because the physical check runs first.
func classifyMount(device, mountpoint, fstype string) (DriveType, bool) {
	if _, ok := skipFsTypes[fstype]; ok {
		return "", false
	}
	if isTransientMount(device, mountpoint) {
		return "", false
	}

	switch {
	case isPhysicalDevice(device):
		return DriveLocal, true
	case isNetworkFs(fstype) || isNetworkDevice(device):
		return DriveNetwork, true
	case strings.HasPrefix(device, "/dev/"):
		// dm-crypt, LVM, md and friends: real storage, just not a plain
		// block-device name.
		return DriveOther, true
	}
	return "", false
}

//go:build linux

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// cloudServices maps GVFS URI schemes to display names.
var cloudServices = map[string]string{
	"google-drive": "Google Drive",
	"onedrive":     "OneDrive",
	"dav":          "WebDAV",
	"davs":         "WebDAV",
	"sftp":         "SFTP",
	"ftp":          "FTP",
	"smb-share":    "Windows Share (SMB)",
	"mtp":          "MTP Device",
	"afp-volume":   "AFP",
}

// cloudServiceName derives a display name from a GVFS directory entry such
// as "google-drive:host=example.com,user=me". Unknown schemes are shown raw.
func cloudServiceName(entry string) string {
	scheme, _, _ := strings.Cut(entry, ":")
	if name, ok := cloudServices[scheme]; ok {
		return name
	}
	return scheme
}

func gvfsDir() string {
	return fmt.Sprintf("/run/user/%d/gvfs", os.Getuid())
}

// appendCloudDrives scans the session GVFS directory for user-space cloud
// and network mounts, which never show up usably in the mount table. Each
// entry with a working capacity query becomes a Network Drive with the
// cloud flag set. The collection ceiling still applies.
func appendCloudDrives(drives []DriveInfo, usage usageFunc) []DriveInfo {
	dir := gvfsDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return drives
	}
	for _, e := range entries {
		if len(drives) >= maxDrives {
			break
		}
		mount := filepath.Join(dir, e.Name())
		u, err := usage(mount)
		if err != nil {
			continue
		}
		d := newDriveInfo(disk.PartitionStat{
			Device:     e.Name(),
			Mountpoint: mount,
			Fstype:     "fuse.gvfsd-fuse",
		}, DriveNetwork, u)
		d.Cloud = true
		d.CloudService = cloudServiceName(e.Name())
		drives = append(drives, d)
	}
	return drives
}

package main

var appversion = "0.5.1"

// DriveType tags a reported mount with its storage category.
type DriveType string

const (
	DriveLocal   DriveType = "Local Drive"
	DriveNetwork DriveType = "Network Drive"
	DriveOther   DriveType = "Other Drive"
)

// DriveInfo holds everything the report prints for one mounted filesystem.
// Records live for a single run; enrichment fields stay empty when the
// lookup finds nothing and are rendered as "-".
type DriveInfo struct {
	Mountpoint string
	Fstype     string
	Device     string
	UUID       string
	Label      string
	Opts       string

	TotalBytes   uint64
	UsedBytes    uint64
	AvailBytes   uint64
	UsagePercent float64

	InodesTotal       uint64
	InodesUsed        uint64
	InodeUsagePercent float64

	DriveType    DriveType
	Cloud        bool
	CloudService string

	Health string
}

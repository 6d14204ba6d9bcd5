// Package global
package global

import (
	"flag"
)

var (
	DebugMode       = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath  = flag.String("config", "./config.json", "Path to configuration file")
	SchedulingDate  = flag.String("date", "", "Scheduling date in YYYY-MM-DD format, defaults to today")
	ServeReportApi  = flag.Bool("serve", false, "Keep running and expose the snapshot over the report API")
	SkipReportEmail = flag.Bool("skip_email", false, "Skip sending the report email")
	HashPassword    = flag.String("hash", "", "Print the bcrypt hash of the given operator password and exit")
)

const (
	AppVersion    = "1.0.0"
	ConfigVersion = "1.0.0"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755

	DateLayout = "2006-01-02"
)

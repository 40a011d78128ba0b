package sources

import "time"

// DefaultSource is the CSV export endpoint of the metrics spreadsheet
const DefaultSource = "https://docs.google.com/spreadsheets/u/1/d/1tVRmfLX6QzoctATHbTRJhjb5KMNJUcB4vM-Wj28SCNk/export"

// CmdOpts specifies the spreadsheet related command-line options
type CmdOpts struct {
	Source      string        `short:"s" long:"source" mapstructure:"source" description:"Spreadsheet export URL, or folder (file:// URI) with <gid>.csv files" env:"SS_SOURCE" default:"https://docs.google.com/spreadsheets/u/1/d/1tVRmfLX6QzoctATHbTRJhjb5KMNJUcB4vM-Wj28SCNk/export"`
	IndexGID    string        `long:"index-gid" mapstructure:"index-gid" description:"Sheet id of the metrics index table" env:"SS_INDEX_GID" default:"0"`
	FirstYear   int           `long:"first-year" mapstructure:"first-year" description:"Observations before this year are dropped" env:"SS_FIRST_YEAR" default:"2000"`
	HTTPTimeout time.Duration `long:"http-timeout" mapstructure:"http-timeout" description:"Timeout of a single sheet download, 0 means no timeout" env:"SS_HTTP_TIMEOUT" default:"0s"`
}

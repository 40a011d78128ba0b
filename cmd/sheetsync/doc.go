// sheetsync is a command line tool that downloads the metrics spreadsheet,
// normalizes every metric listed in its index sheet and stores the result to
// one or more sinks.
//
// Usage:
//
//	sheetsync [OPTIONS] [source]
//
// Source:
//
//	-s, --source=                            Spreadsheet export URL, or folder
//	                                         (file:// URI) with <gid>.csv files
//	                                         [$SS_SOURCE]
//	    --index-gid=                         Sheet id of the metrics index table
//	                                         (default: 0) [$SS_INDEX_GID]
//	    --first-year=                        Observations before this year are
//	                                         dropped (default: 2000)
//	                                         [$SS_FIRST_YEAR]
//	    --http-timeout=                      Timeout of a single sheet download,
//	                                         0 means no timeout (default: 0s)
//	                                         [$SS_HTTP_TIMEOUT]
//
// Sinks:
//
//	--sink=                              URI where metrics will be stored,
//	                                     can be used multiple times
//	                                     (default: jsonfile://src/data/metrics.json)
//	                                     [$SS_SINK]
//	--on-duplicate=[warn|error]          What to do when two index rows share
//	                                     a slug (default: warn)
//	                                     [$SS_ON_DUPLICATE]
//
// Logging:
//
//	-v, --log-level=[debug|info|error]       Verbosity level for log output
//	                                         (default: info) [$SS_LOG_LEVEL]
//	    --log-file=                          File name to store logs
//	    --log-file-format=[json|text]        Format of file logs (default: json)
//	    --log-file-rotate                    Rotate log files
//	    --log-file-size=                     Maximum size in MB of the log file
//	                                         before it gets rotated (default: 100)
//	    --log-file-age=                      Number of days to retain old log
//	                                         files, 0 means forever (default: 0)
//	    --log-file-number=                   Maximum number of old log files to
//	                                         retain, 0 to retain all (default: 0)
//
// Help Options:
//
//	-h, --help                               Show this help message
//
// Available commands:
//
//	source         Inspect the spreadsheet
//	   index           Download the index table, list its metrics and then exit
//
// Supported sink schemes are jsonfile://, yamlfile://, promfile://,
// boltfile:// and postgresql://. Slugs of synchronized metrics are printed to
// stdout, logs go to stderr.
package main

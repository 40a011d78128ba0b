package log

// CmdOpts specifies the logging command-line options
type CmdOpts struct {
	LogLevel      string `short:"v" long:"log-level" mapstructure:"log-level" description:"Verbosity level for log output" choice:"debug" choice:"info" choice:"error" default:"info" env:"SS_LOG_LEVEL"`
	LogFile       string `long:"log-file" mapstructure:"log-file" description:"File name to store logs" env:"SS_LOG_FILE"`
	LogFileFormat string `long:"log-file-format" mapstructure:"log-file-format" description:"Format of file logs" choice:"json" choice:"text" default:"json" env:"SS_LOG_FILE_FORMAT"`
	LogFileRotate bool   `long:"log-file-rotate" mapstructure:"log-file-rotate" description:"Rotate log files" env:"SS_LOG_FILE_ROTATE"`
	LogFileSize   int    `long:"log-file-size" mapstructure:"log-file-size" description:"Maximum size in MB of the log file before it gets rotated" default:"100" env:"SS_LOG_FILE_SIZE"`
	LogFileAge    int    `long:"log-file-age" mapstructure:"log-file-age" description:"Number of days to retain old log files, 0 means forever" default:"0" env:"SS_LOG_FILE_AGE"`
	LogFileNumber int    `long:"log-file-number" mapstructure:"log-file-number" description:"Maximum number of old log files to retain, 0 to retain all" default:"0" env:"SS_LOG_FILE_NUMBER"`
}

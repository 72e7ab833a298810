package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool
	UseConsoleWriter bool // human readable output instead of json
}

// LogFile implements a file based logger.
// Every level group gets its own rolling file.
type LogFile struct {
	Enabled bool
	Path    string

	AccessLog        string
	AccessMaxSize    int
	AccessMaxBackups int
	AccessMaxAge     int

	ErrorLog        string
	ErrorMaxSize    int
	ErrorMaxBackups int
	ErrorMaxAge     int

	InfoLog        string
	InfoMaxSize    int
	InfoMaxBackups int
	InfoMaxAge     int

	TraceLog        string
	TraceMaxSize    int
	TraceMaxBackups int
	TraceMaxAge     int

	WarnLog        string
	WarnMaxSize    int
	WarnMaxBackups int
	WarnMaxAge     int
}

// Log implements the logger config.
type Log struct {
	LogLevel string // trace, debug, info, warn, error.

	// EnableAccessLogToConsole if true the webservice access log is written to the console.
	// Does not overrule flag Console.Enabled!
	// If Console.Enabled is false, still no access log output to the console will be shown.
	EnableAccessLogToConsole bool
	ReportCaller             bool
	DisableCheckAlive        bool // do not log /checkalive calls

	AppName     string
	ServiceName string

	// Console used mainly for docker and dev.
	Console Console

	File LogFile
}

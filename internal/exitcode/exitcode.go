package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	MalformedRecord = 3
	WriteError      = 4
	PartialSuccess  = 6
)

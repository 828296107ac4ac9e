package bench

import "errors"

var (
	errConfigFileRead   = errors.New("cannot read config file")
	errConfigInvalid    = errors.New("invalid config")
	errCapacity         = errors.New("capacity must be positive")
	errKeyCount         = errors.New("keys cannot be negative")
	errRounds           = errors.New("rounds must be positive")
	errWarmup           = errors.New("warmup cannot be negative")
	errNoOperations     = errors.New("no operations selected")
	errUnknownOperation = errors.New("unknown operation")
	errReportWrite      = errors.New("cannot write report")
)

package shared

import "fmt"

var (
	// Playlist format errors
	ErrMissingHeader  = fmt.Errorf("missing #EXTM3U header")
	ErrUnreadableLine = fmt.Errorf("unreadable line")

	// IO errors
	ErrOpenInput    = fmt.Errorf("cannot open input")
	ErrCreateOutput = fmt.Errorf("cannot create output")
	ErrWriteOutput  = fmt.Errorf("cannot write output")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	// History errors
	ErrHistoryDisabled = fmt.Errorf("history recording disabled")
)

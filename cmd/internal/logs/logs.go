package logs

import (
	"io"
	"log"

	"github.com/fatih/color"
)

var (
	Debug = log.New(io.Discard, color.HiBlackString("[DEBUG] "), log.Lmsgprefix)
	Info  = log.New(color.Output, color.HiBlueString("[INFO] "), log.Lmsgprefix)
	Warn  = log.New(color.Output, color.HiYellowString("[WARN] "), log.Lmsgprefix)
	Err   = log.New(color.Output, color.HiRedString("[ERROR] "), log.Lmsgprefix)
)

// SetDebug turns the Debug logger on or off.
func SetDebug(on bool) {
	if on {
		Debug.SetOutput(color.Output)
	} else {
		Debug.SetOutput(io.Discard)
	}
}

func DebugEnabled() bool { return Debug.Writer() != io.Discard }

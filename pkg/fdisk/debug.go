package fdisk

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ostafen/gofdisk/internal/libfdisk"
)

var logger = logrus.NewEntry(logrus.StandardLogger())

// SetLogger replaces the logger used for the package's debug tracing.
// By default the logrus standard logger is used, so tracing shows up as
// soon as the host application lowers its level to Debug.
func SetLogger(l *logrus.Logger) {
	logger = logrus.NewEntry(l)
}

func debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// InitEngineDebug enables libfdisk's own debug output. With full unset the
// subsystems are read from the LIBFDISK_DEBUG environment variable. The
// engine latches the first call; later calls have no effect.
func InitEngineDebug(full bool) {
	if full {
		libfdisk.InitDebug(0xffff)
		return
	}
	libfdisk.InitDebug(0)
}

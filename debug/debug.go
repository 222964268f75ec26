//go:build debug
// +build debug

package debug

import "github.com/sirupsen/logrus"

const Enabled = true

var log = logrus.WithField("prefix", "flags")

func Log(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

package String_View

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// assertions gates the precondition checks on Index, Front, Back,
// RemovePrefix, RemoveSuffix, Substr and iterator access.
var assertions atomic.Bool

// AssertionsEnabled reports whether precondition checks are on.
func AssertionsEnabled() bool {
	return assertions.Load()
}

// assertFailed logs the violated precondition and panics.
func assertFailed(op string, fields logrus.Fields) {
	logrus.WithFields(fields).Panicf("string view: %s precondition violated", op)
}

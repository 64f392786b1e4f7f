package String_View

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// envAssertions turns precondition checks on at startup, e.g.
// STRING_VIEW_ASSERT=1.
const envAssertions = "STRING_VIEW_ASSERT"

// init routes logrus output to stdout for easier log capture.
func init() {
	logrus.SetOutput(os.Stdout)

	if s := os.Getenv(envAssertions); s != "" {
		on, err := strconv.ParseBool(s)
		if err != nil {
			logrus.Warnf("ignoring %s=%q: %v", envAssertions, s, err)
			return
		}
		assertions.Store(on)
	}
}

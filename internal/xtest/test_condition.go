package xtest

import (
	"os"
	"testing"
	"time"
)

// enableAllTestsFlag set the env var for run all tests
// some of them may take a lot of time (minutes of lock hammering)
const enableAllTestsFlag = "LOCKED_ENABLE_ALL_TESTS"

func AllowByFlag(tb testing.TB, flag string) { //nolint:thelper
	if os.Getenv(flag) != "" {
		return
	}
	if os.Getenv(enableAllTestsFlag) != "" {
		return
	}
	tb.Skipf("Skip test, because it need flag to run: '%v'", flag)
}

// DurationFromEnv parses env var as time.Duration, def is returned when the
// variable is unset or malformed
func DurationFromEnv(name string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}

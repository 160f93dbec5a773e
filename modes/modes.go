package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// Mode tells providers whether they run for a user or under go test.
type Mode uint8

const (
	// ModeDevelopment skips every outside input, such as config discovery.
	ModeDevelopment Mode = iota + 1
	// ModeProduction is the mode of the knot binary.
	ModeProduction
)

func (m Mode) String() string {
	switch m {
	case ModeDevelopment:
		return "development"
	case ModeProduction:
		return "production"
	}
	return "unknown"
}

// ModuleForProduction provides Mode and a nil *testing.T.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

// ModuleForTest provides ModeDevelopment and the running test, keeping
// scopes hermetic: no config file is read.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

// ForTest is the mode module every dscope scope in tests starts from.
func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

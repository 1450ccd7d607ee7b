package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/nextup/internal/rightnow"
	"github.com/spf13/pflag"
)

// energyValue is a pflag.Value that only accepts energy levels 1-5. Zero
// means unset, which the engine replaces with its default.
type energyValue int

func (e *energyValue) String() string {
	if *e == 0 {
		return ""
	}
	return strconv.Itoa(int(*e))
}

func (e *energyValue) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < rightnow.MinEnergy || v > rightnow.MaxEnergy {
		return fmt.Errorf("energy must be between %d and %d", rightnow.MinEnergy, rightnow.MaxEnergy)
	}
	*e = energyValue(v)
	return nil
}

func (e *energyValue) Type() string {
	return "energy"
}

var _ pflag.Value = (*energyValue)(nil)

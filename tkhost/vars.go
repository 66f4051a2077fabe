package tkhost

import (
	"github.com/thiagokokada/tkforms/internal/tcl"
	"github.com/thiagokokada/tkforms/internal/tkutil"
)

// stringCell stores a binding.Var in a global Tcl variable.
type stringCell struct {
	name string
}

func (c *stringCell) Name() string { return c.name }

func (c *stringCell) Load() string {
	return tkutil.EvalOrEmpty("set %s", c.name)
}

func (c *stringCell) Store(v string) {
	tkutil.Run("set %s %s", c.name, tcl.Quote(v))
}

type intCell struct {
	name string
}

func (c *intCell) Name() string { return c.name }

func (c *intCell) Load() int {
	return tkutil.Atoi(tkutil.EvalOrEmpty("set %s", c.name))
}

func (c *intCell) Store(v int) {
	tkutil.Run("set %s %d", c.name, v)
}

package app

import (
	"github.com/vk/sweepgo/backends/localexec"
	"github.com/vk/sweepgo/backends/printer"
	"github.com/vk/sweepgo/internal/registry"
)

// coreBackends lists the launcher backends compiled into the binary.
// Tests can substitute their own set through NewApp's variadic parameter.
var coreBackends = []registry.Module{
	&localexec.Module{},
	&printer.Module{},
}

package knotconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/knot/configs"
	"github.com/reusee/knot/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/knot/debugs"
	"github.com/reusee/knot/knotconfigs"
	"github.com/reusee/knot/tangles"
)

type Module struct {
	dscope.Module
	Configs knotconfigs.Module
	Tangles tangles.Module
	Debugs  debugs.Module
}

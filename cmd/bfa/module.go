package main

import (
	"github.com/reusee/bfa/bfavm"
	"github.com/reusee/bfa/debugs"
	"github.com/reusee/bfa/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	VM     bfavm.Module
	Debugs debugs.Module
	Logs   logs.Module
}

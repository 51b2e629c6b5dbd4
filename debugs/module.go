package debugs

import (
	"github.com/reusee/bfa/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

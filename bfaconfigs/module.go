package bfaconfigs

import (
	"github.com/reusee/bfa/configs"
	"github.com/reusee/bfa/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

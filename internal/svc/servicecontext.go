// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"github.com/joeblew999/plat-fonts/internal/config"
	"github.com/joeblew999/plat-fonts/pkg/usage"
)

type ServiceContext struct {
	Config config.Config
	Usage  *usage.Recorder
}

func NewServiceContext(c config.Config, recorder *usage.Recorder) *ServiceContext {
	return &ServiceContext{
		Config: c,
		Usage:  recorder,
	}
}

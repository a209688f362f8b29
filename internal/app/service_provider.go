package app

import (
	"casino_showcase/internal/config"
	"casino_showcase/internal/config/env"
	"casino_showcase/internal/logger"
	"casino_showcase/internal/model"
	"casino_showcase/internal/service"
	"casino_showcase/internal/service/showcase"
	"io"

	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	log    *zap.Logger

	// Scenario
	scenarioCfg config.ScenarioConfig

	// Users
	registry *model.Registry

	// Showcase bits
	showcaseServ service.ShowcaseService
	out          io.Writer
	errOut       io.Writer
}

func newServiceProvider(out, errOut io.Writer) *ServiceProvider {
	return &ServiceProvider{
		out:    out,
		errOut: errOut,
	}
}

func (sp *ServiceProvider) LogConfig() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		l, err := logger.New(sp.LogConfig().Level())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

func (sp *ServiceProvider) ScenarioConfig() config.ScenarioConfig {
	if sp.scenarioCfg == nil {
		cfg, err := env.NewScenarioConfig()
		if err != nil {
			panic("failed to get scenario config: " + err.Error())
		}
		sp.scenarioCfg = cfg
	}
	return sp.scenarioCfg
}

func (sp *ServiceProvider) Registry() *model.Registry {
	if sp.registry == nil {
		sp.registry = model.NewRegistry()
	}
	return sp.registry
}

func (sp *ServiceProvider) ShowcaseService() service.ShowcaseService {
	if sp.showcaseServ == nil {
		sp.showcaseServ = showcase.NewShowcaseService(showcase.Deps{
			Cfg:      sp.ScenarioConfig(),
			Registry: sp.Registry(),
			Log:      sp.Logger(),
			Out:      sp.out,
			ErrOut:   sp.errOut,
		})
	}
	return sp.showcaseServ
}

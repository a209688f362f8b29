package showcase

import (
	"casino_showcase/internal/config"
	"casino_showcase/internal/model"
	"casino_showcase/internal/service"
	"fmt"
	"io"

	"go.uber.org/zap"
)

type serv struct {
	cfg      config.ScenarioConfig
	registry *model.Registry
	log      *zap.Logger

	// Консоль демонстрации и поток ошибок
	out    io.Writer
	errOut io.Writer
}

type Deps struct {
	Cfg      config.ScenarioConfig
	Registry *model.Registry
	Log      *zap.Logger
	Out      io.Writer
	ErrOut   io.Writer
}

// NewShowcaseService создает сервис демонстрации
func NewShowcaseService(deps Deps) service.ShowcaseService {
	return &serv{
		cfg:      deps.Cfg,
		registry: deps.Registry,
		log:      deps.Log,
		out:      deps.Out,
		errOut:   deps.ErrOut,
	}
}

func (s *serv) UserCount() int {
	return s.registry.UserCount()
}

func (s *serv) println(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(s.out, line)
	}
}

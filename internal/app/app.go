package app

import (
	"casino_showcase/internal/config"
	"context"
	"io"
	"os"

	"go.uber.org/zap"
)

type App struct {
	ServiceProvider *ServiceProvider

	out    io.Writer
	errOut io.Writer
}

func NewApp() *App {
	return NewAppWithOutput(os.Stdout, os.Stderr)
}

// NewAppWithOutput - приложение с заданными потоками вывода
func NewAppWithOutput(out, errOut io.Writer) *App {
	return &App{
		out:    out,
		errOut: errOut,
	}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.out, s.errOut)
}

func (s *App) Run() error {
	// .env необязателен, переменные могут быть заданы окружением
	envErr := config.Load(".env")
	s.initServiceProvider()

	log := s.ServiceProvider.Logger()
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Debug("env file not loaded", zap.Error(envErr))
	}

	ctx := context.Background()
	err := s.ServiceProvider.ShowcaseService().Run(ctx)
	if err != nil {
		return err
	}
	return nil
}

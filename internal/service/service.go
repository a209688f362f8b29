package service

import (
	"context"
)

type ShowcaseService interface {
	// Run выполняет сценарий демонстрации и печатает результат
	Run(ctx context.Context) error
	UserCount() int
}

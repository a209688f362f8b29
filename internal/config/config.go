package config

import (
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

// Load подгружает переменные окружения из .env файла
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// UserSpec - параметры пользователя из сценария.
// CashbackRate используется только для VIP
type UserSpec struct {
	ID           int
	Name         string
	Balance      decimal.Decimal
	CashbackRate decimal.Decimal
}

// SlotSpec - параметры слота и ставки, которые на нем делаются
type SlotSpec struct {
	Name   string
	MinBet int
	MaxBet int
	Bets   []int
}

type ScenarioConfig interface {
	VIPUser() UserSpec
	Slot() SlotSpec
	ClonableUser() UserSpec
}

type LogConfig interface {
	Level() zapcore.Level
}

package env

import (
	"casino_showcase/internal/config"
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	scenarioPathEnvName = "SCENARIO_PATH"
)

//go:embed scenario.yaml
var defaultScenario []byte

type scenarioFile struct {
	VIPUser      userEntry `yaml:"vip_user"`
	Slot         slotEntry `yaml:"slot"`
	ClonableUser userEntry `yaml:"clonable_user"`
}

type userEntry struct {
	ID           int    `yaml:"id"`
	Name         string `yaml:"name"`
	Balance      string `yaml:"balance"`
	CashbackRate string `yaml:"cashback_rate"`
}

type slotEntry struct {
	Name   string `yaml:"name"`
	MinBet int    `yaml:"min_bet"`
	MaxBet int    `yaml:"max_bet"`
	Bets   []int  `yaml:"bets"`
}

type scenarioConfig struct {
	vipUser      config.UserSpec
	slot         config.SlotSpec
	clonableUser config.UserSpec
}

// NewScenarioConfig читает сценарий из файла SCENARIO_PATH,
// если переменная не задана - берется встроенный сценарий
func NewScenarioConfig() (config.ScenarioConfig, error) {
	path := os.Getenv(scenarioPathEnvName)
	if len(path) == 0 {
		return NewScenarioConfigFromBytes(defaultScenario)
	}

	return NewScenarioConfigFromYAML(path)
}

func NewScenarioConfigFromYAML(path string) (config.ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	return NewScenarioConfigFromBytes(data)
}

func NewScenarioConfigFromBytes(data []byte) (config.ScenarioConfig, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	vipUser, err := file.VIPUser.toSpec(true)
	if err != nil {
		return nil, fmt.Errorf("vip_user: %w", err)
	}

	clonableUser, err := file.ClonableUser.toSpec(false)
	if err != nil {
		return nil, fmt.Errorf("clonable_user: %w", err)
	}

	if len(file.Slot.Name) == 0 {
		return nil, fmt.Errorf("slot: name not found")
	}

	return &scenarioConfig{
		vipUser: vipUser,
		slot: config.SlotSpec{
			Name:   file.Slot.Name,
			MinBet: file.Slot.MinBet,
			MaxBet: file.Slot.MaxBet,
			Bets:   file.Slot.Bets,
		},
		clonableUser: clonableUser,
	}, nil
}

func (e userEntry) toSpec(withCashback bool) (config.UserSpec, error) {
	if len(e.Name) == 0 {
		return config.UserSpec{}, fmt.Errorf("name not found")
	}

	balance, err := decimal.NewFromString(e.Balance)
	if err != nil {
		return config.UserSpec{}, fmt.Errorf("invalid balance %q: %w", e.Balance, err)
	}

	spec := config.UserSpec{
		ID:      e.ID,
		Name:    e.Name,
		Balance: balance,
	}

	if withCashback {
		rate, err := decimal.NewFromString(e.CashbackRate)
		if err != nil {
			return config.UserSpec{}, fmt.Errorf("invalid cashback rate %q: %w", e.CashbackRate, err)
		}
		spec.CashbackRate = rate
	}

	return spec, nil
}

func (s *scenarioConfig) VIPUser() config.UserSpec {
	return s.vipUser
}

func (s *scenarioConfig) Slot() config.SlotSpec {
	return s.slot
}

func (s *scenarioConfig) ClonableUser() config.UserSpec {
	return s.clonableUser
}

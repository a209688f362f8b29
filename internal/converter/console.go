package converter

import (
	"fmt"
	"strings"

	"casino_showcase/internal/model"

	"github.com/shopspring/decimal"
)

// Заголовки разделов демонстрации
const (
	VIPSectionTitle   = "Работа с VIPUser:"
	SlotSectionTitle  = "Использование абстрактного класса и интерфейсов:"
	CloneSectionTitle = "Использование клонирования:"

	OriginalLabel     = "Оригинал:"
	ShallowCloneLabel = "Мелкое клонирование:"
	DeepCloneLabel    = "Глубокое клонирование:"
)

var hundred = decimal.NewFromInt(100)

// ToUserInfo - строки с информацией о пользователе.
// Для VIP добавляется строка с кэшбэком
func ToUserInfo(u *model.User) []string {
	lines := []string{
		fmt.Sprintf("ID: %d, Имя: %s, Баланс: %s", u.ID(), u.Name(), FormatAmount(u.Balance())),
	}

	if u.Role() == model.RoleVIP {
		lines = append(lines, fmt.Sprintf("Кэшбэк: %s%%", FormatAmount(u.CashbackRate().Mul(hundred))))
	}

	return lines
}

func ToSlotInfo(s *model.SlotGame) string {
	return fmt.Sprintf("Слот: %s, Макс. ставка: %d, Мин. ставка: %d", s.Name, s.MaxBet, s.MinBet)
}

// ToBetMessage - сообщение о принятой или отклоненной ставке
func ToBetMessage(bet model.Bet) string {
	if !bet.Accepted {
		return fmt.Sprintf("Ставка должна быть между %d и %d", bet.MinBet, bet.MaxBet)
	}
	return fmt.Sprintf("Ставка размещена на слот %s: %d", bet.Slot, bet.Amount)
}

func ToCloneError(err error) string {
	return "Ошибка клонирования: " + err.Error()
}

func ToUserCount(count int) string {
	return fmt.Sprintf("Всего пользователей: %d", count)
}

// FormatAmount печатает сумму минимум с одним знаком после точки: 1000 -> 1000.0
func FormatAmount(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

package model

// Bettable - все, на что можно поставить
type Bettable interface {
	PlaceBet(amount int) Bet
}

// Bet - результат ставки. Ставка вне диапазона не ошибка, а отказ
type Bet struct {
	Slot     string
	Amount   int
	MinBet   int
	MaxBet   int
	Accepted bool
}

// SlotGame - слот с диапазоном ставок [MinBet, MaxBet].
// MinBet > MaxBet при создании не проверяется
type SlotGame struct {
	Name   string
	MinBet int
	MaxBet int
}

func NewSlotGame(name string, minBet, maxBet int) *SlotGame {
	return &SlotGame{
		Name:   name,
		MinBet: minBet,
		MaxBet: maxBet,
	}
}

// PlaceBet проверяет ставку. Состояние слота не меняется
func (s *SlotGame) PlaceBet(amount int) Bet {
	return Bet{
		Slot:     s.Name,
		Amount:   amount,
		MinBet:   s.MinBet,
		MaxBet:   s.MaxBet,
		Accepted: InBetRange(s.MinBet, s.MaxBet, amount),
	}
}

// Inverted - минимальная ставка больше максимальной, любая ставка будет отклонена
func (s *SlotGame) Inverted() bool {
	return s.MinBet > s.MaxBet
}

// InBetRange проверяет ставку на попадание в диапазон, границы включены
func InBetRange(minBet, maxBet, amount int) bool {
	return amount >= minBet && amount <= maxBet
}

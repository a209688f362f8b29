package showcase

import (
	"casino_showcase/internal/converter"
	"casino_showcase/internal/model"

	"go.uber.org/zap"
)

func (s *serv) slotSection(log *zap.Logger) error {
	spec := s.cfg.Slot()

	slot := model.NewSlotGame(spec.Name, spec.MinBet, spec.MaxBet)
	if slot.Inverted() {
		// Диапазон не исправляем, только предупреждаем
		log.Warn("slot min bet is greater than max bet, every bet will be rejected",
			zap.String("slot", slot.Name),
			zap.Int("min_bet", slot.MinBet),
			zap.Int("max_bet", slot.MaxBet),
		)
	}
	s.println(converter.ToSlotInfo(slot))

	var bettable model.Bettable = slot
	for _, amount := range spec.Bets {
		bet := bettable.PlaceBet(amount)
		if !bet.Accepted {
			log.Info("bet rejected", zap.String("slot", bet.Slot), zap.Int("amount", bet.Amount))
		}
		s.println(converter.ToBetMessage(bet))
	}

	return nil
}

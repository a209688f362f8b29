package showcase

import (
	"casino_showcase/internal/converter"

	"go.uber.org/zap"
)

func (s *serv) vipSection(log *zap.Logger) error {
	spec := s.cfg.VIPUser()

	user, err := s.registry.NewVIPUser(spec.ID, spec.Name, spec.Balance, spec.CashbackRate)
	if err != nil {
		return err
	}
	s.println(converter.ToUserInfo(user)...)

	// Начисляем кэшбэк и показываем новый баланс
	before := user.Balance()
	if err := user.AddCashback(); err != nil {
		return err
	}
	log.Debug("cashback added",
		zap.Int("user_id", user.ID()),
		zap.String("before", before.String()),
		zap.String("after", user.Balance().String()),
	)
	s.println(converter.ToUserInfo(user)...)

	return nil
}

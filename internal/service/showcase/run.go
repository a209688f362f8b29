package showcase

import (
	"casino_showcase/internal/converter"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type section struct {
	name  string
	title string
	run   func(log *zap.Logger) error
}

// Run выполняет разделы демонстрации по порядку.
// Ошибка любого раздела прерывает выполнение
func (s *serv) Run(ctx context.Context) error {
	log := s.log.With(zap.String("run_id", uuid.NewString()))
	log.Info("showcase started")

	sections := []section{
		{name: "vip", title: converter.VIPSectionTitle, run: s.vipSection},
		{name: "slot", title: converter.SlotSectionTitle, run: s.slotSection},
		{name: "clone", title: converter.CloneSectionTitle, run: s.cloneSection},
	}

	for i, sec := range sections {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Пустая строка между разделами
		if i > 0 {
			s.println("")
		}
		s.println(sec.title)

		if err := sec.run(log.With(zap.String("section", sec.name))); err != nil {
			log.Error("showcase section failed", zap.String("section", sec.name), zap.Error(err))
			return fmt.Errorf("%s section: %w", sec.name, err)
		}
	}

	s.println("", converter.ToUserCount(s.UserCount()))
	log.Info("showcase finished", zap.Int("users", s.UserCount()))

	return nil
}

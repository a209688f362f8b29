package showcase

import (
	"casino_showcase/internal/converter"
	"casino_showcase/internal/model"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

func (s *serv) cloneSection(log *zap.Logger) error {
	spec := s.cfg.ClonableUser()

	user, err := s.registry.NewClonableUser(spec.ID, spec.Name, spec.Balance)
	if err != nil {
		return err
	}

	return s.showClones(log, user)
}

// showClones печатает оригинал и обе копии.
// ErrCloneUnsupported не прерывает демонстрацию: печатаем ошибку и идем дальше
func (s *serv) showClones(log *zap.Logger, user *model.User) error {
	shallow, deep, err := cloneBoth(user)
	if err != nil {
		if !errors.Is(err, model.ErrCloneUnsupported) {
			return err
		}
		log.Warn("clone failed", zap.Int("user_id", user.ID()), zap.Stringer("role", user.Role()), zap.Error(err))
		fmt.Fprintln(s.errOut, converter.ToCloneError(err))
		return nil
	}

	s.println(converter.OriginalLabel)
	s.println(converter.ToUserInfo(user)...)
	s.println(converter.ShallowCloneLabel)
	s.println(converter.ToUserInfo(shallow)...)
	s.println(converter.DeepCloneLabel)
	s.println(converter.ToUserInfo(deep)...)

	return nil
}

func cloneBoth(user *model.User) (*model.User, *model.User, error) {
	shallow, err := user.Clone()
	if err != nil {
		return nil, nil, err
	}

	deep, err := user.DeepClone()
	if err != nil {
		return nil, nil, err
	}

	return shallow, deep, nil
}

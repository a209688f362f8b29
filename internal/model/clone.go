package model

import "github.com/shopspring/decimal"

// Clone - поверхностная копия пользователя.
// Копия не проходит через Registry и не учитывается в UserCount.
func (u *User) Clone() (*User, error) {
	if u.role != RoleClonable {
		return nil, ErrCloneUnsupported
	}

	clone := *u
	return &clone, nil
}

// DeepClone - копия с отдельно пересобранным балансом.
// Все поля пользователя значения, поэтому результат совпадает с Clone.
func (u *User) DeepClone() (*User, error) {
	clone, err := u.Clone()
	if err != nil {
		return nil, err
	}

	// Coefficient возвращает копию big.Int
	balance := decimal.NewFromBigInt(u.balance.Coefficient(), u.balance.Exponent())
	if err := clone.SetBalance(balance); err != nil {
		return nil, err
	}

	return clone, nil
}

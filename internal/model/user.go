package model

import "github.com/shopspring/decimal"

// Role определяет, какие возможности есть у пользователя
type Role int

const (
	RoleStandard Role = iota
	RoleVIP
	RoleClonable
)

func (r Role) String() string {
	switch r {
	case RoleVIP:
		return "vip"
	case RoleClonable:
		return "clonable"
	default:
		return "standard"
	}
}

// User - пользователь казино.
// Баланс никогда не бывает отрицательным, создается только через Registry.
type User struct {
	id      int
	name    string
	balance decimal.Decimal
	role    Role

	// Только для RoleVIP
	cashbackRate decimal.Decimal
}

func (u *User) ID() int {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) CashbackRate() decimal.Decimal {
	return u.cashbackRate
}

// Balance возвращает текущий баланс
func (u *User) Balance() decimal.Decimal {
	return u.balance
}

// SetBalance устанавливает баланс.
// При отрицательном значении возвращает ErrInvalidBalance и баланс не меняется
func (u *User) SetBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return ErrInvalidBalance
	}
	u.balance = balance
	return nil
}

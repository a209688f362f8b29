package model

import "github.com/shopspring/decimal"

var (
	minCashbackRate = decimal.Zero
	maxCashbackRate = decimal.NewFromInt(1)
)

// Registry создает пользователей и считает, сколько их было создано.
// Счетчик только растет.
type Registry struct {
	userCount int
}

func NewRegistry() *Registry {
	return &Registry{}
}

// NewUser создает обычного пользователя
func (r *Registry) NewUser(id int, name string, balance decimal.Decimal) (*User, error) {
	return r.register(&User{id: id, name: name, balance: balance, role: RoleStandard})
}

// NewVIPUser создает VIP пользователя с кэшбэком rate
func (r *Registry) NewVIPUser(id int, name string, balance, rate decimal.Decimal) (*User, error) {
	if rate.LessThan(minCashbackRate) || rate.GreaterThan(maxCashbackRate) {
		return nil, ErrInvalidCashbackRate
	}

	return r.register(&User{id: id, name: name, balance: balance, role: RoleVIP, cashbackRate: rate})
}

// NewClonableUser создает пользователя, которого можно клонировать
func (r *Registry) NewClonableUser(id int, name string, balance decimal.Decimal) (*User, error) {
	return r.register(&User{id: id, name: name, balance: balance, role: RoleClonable})
}

// UserCount - количество пользователей, созданных через этот реестр
func (r *Registry) UserCount() int {
	return r.userCount
}

func (r *Registry) register(u *User) (*User, error) {
	if u.balance.IsNegative() {
		return nil, ErrInvalidBalance
	}
	r.userCount++
	return u, nil
}

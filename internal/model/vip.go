package model

// AddCashback начисляет кэшбэк: balance + balance*rate.
// Новый баланс проходит через SetBalance
func (u *User) AddCashback() error {
	if u.role != RoleVIP {
		return ErrNotVIP
	}

	balance := u.Balance()
	return u.SetBalance(balance.Add(balance.Mul(u.cashbackRate)))
}

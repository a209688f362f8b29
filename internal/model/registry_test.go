package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRegistryCountsEveryUserKind(t *testing.T) {
	r := NewRegistry()
	if r.UserCount() != 0 {
		t.Fatalf("expected empty registry, got %d", r.UserCount())
	}

	balance := decimal.NewFromInt(100)
	if _, err := r.NewUser(1, "a", balance); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.NewVIPUser(2, "b", balance, decimal.RequireFromString("0.1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.NewClonableUser(3, "c", balance); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.UserCount() != 3 {
		t.Fatalf("expected 3 users, got %d", r.UserCount())
	}
}

func TestRegistryCountIsMonotonic(t *testing.T) {
	r := NewRegistry()
	prev := r.UserCount()
	for i := 0; i < 10; i++ {
		if _, err := r.NewUser(i, "u", decimal.Zero); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.UserCount() != prev+1 {
			t.Fatalf("expected %d, got %d", prev+1, r.UserCount())
		}
		prev = r.UserCount()
	}
}

func TestRegistryRejectsInvalidUsers(t *testing.T) {
	cases := []struct {
		name    string
		create  func(r *Registry) (*User, error)
		wantErr error
	}{
		{
			name: "negative balance",
			create: func(r *Registry) (*User, error) {
				return r.NewUser(1, "a", decimal.NewFromInt(-1))
			},
			wantErr: ErrInvalidBalance,
		},
		{
			name: "negative clonable balance",
			create: func(r *Registry) (*User, error) {
				return r.NewClonableUser(1, "a", decimal.NewFromInt(-1))
			},
			wantErr: ErrInvalidBalance,
		},
		{
			name: "rate above one",
			create: func(r *Registry) (*User, error) {
				return r.NewVIPUser(1, "a", decimal.NewFromInt(1), decimal.RequireFromString("1.01"))
			},
			wantErr: ErrInvalidCashbackRate,
		},
		{
			name: "negative rate",
			create: func(r *Registry) (*User, error) {
				return r.NewVIPUser(1, "a", decimal.NewFromInt(1), decimal.RequireFromString("-0.1"))
			},
			wantErr: ErrInvalidCashbackRate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry()
			user, err := tc.create(r)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if user != nil {
				t.Fatalf("expected nil user")
			}
			if r.UserCount() != 0 {
				t.Fatalf("rejected user must not be counted, got %d", r.UserCount())
			}
		})
	}
}

func TestRegistryAcceptsRateBounds(t *testing.T) {
	r := NewRegistry()
	for _, rate := range []string{"0", "1"} {
		if _, err := r.NewVIPUser(1, "a", decimal.NewFromInt(1), decimal.RequireFromString(rate)); err != nil {
			t.Fatalf("rate %s: unexpected error: %v", rate, err)
		}
	}
}

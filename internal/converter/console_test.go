package converter

import (
	"errors"
	"reflect"
	"testing"

	"casino_showcase/internal/model"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"1000.0", "1000.0"},
		{"1100.00", "1100.0"},
		{"0", "0.0"},
		{"12.5", "12.5"},
		{"0.05", "0.05"},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			got := FormatAmount(decimal.RequireFromString(tc.value))
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestToUserInfo(t *testing.T) {
	r := model.NewRegistry()
	regular, err := r.NewClonableUser(2, "Мария", decimal.RequireFromString("2000.0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vip, err := r.NewVIPUser(1, "Алексей", decimal.RequireFromString("1000.0"), decimal.RequireFromString("0.1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		user *model.User
		want []string
	}{
		{"clonable", regular, []string{"ID: 2, Имя: Мария, Баланс: 2000.0"}},
		{"vip", vip, []string{"ID: 1, Имя: Алексей, Баланс: 1000.0", "Кэшбэк: 10.0%"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToUserInfo(tc.user)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestToSlotInfo(t *testing.T) {
	got := ToSlotInfo(model.NewSlotGame("Lucky 7", 50, 500))
	want := "Слот: Lucky 7, Макс. ставка: 500, Мин. ставка: 50"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestToBetMessage(t *testing.T) {
	slot := model.NewSlotGame("Lucky 7", 50, 500)

	cases := []struct {
		amount int
		want   string
	}{
		{100, "Ставка размещена на слот Lucky 7: 100"},
		{10, "Ставка должна быть между 50 и 500"},
		{500, "Ставка размещена на слот Lucky 7: 500"},
	}

	for _, tc := range cases {
		if got := ToBetMessage(slot.PlaceBet(tc.amount)); got != tc.want {
			t.Fatalf("amount %d: expected %q, got %q", tc.amount, tc.want, got)
		}
	}
}

func TestToCloneError(t *testing.T) {
	got := ToCloneError(errors.New("boom"))
	if got != "Ошибка клонирования: boom" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestToUserCount(t *testing.T) {
	if got := ToUserCount(3); got != "Всего пользователей: 3" {
		t.Fatalf("unexpected message %q", got)
	}
}

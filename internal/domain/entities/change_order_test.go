package entities

import "testing"

func TestChangeOrderStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct{ from, to ChangeOrderStatus }{
		{ChangeOrderStatusDraft, ChangeOrderStatusSent},
		{ChangeOrderStatusDraft, ChangeOrderStatusSigned},
		{ChangeOrderStatusSent, ChangeOrderStatusSigned},
		{ChangeOrderStatusSigned, ChangeOrderStatusDraft},
		{ChangeOrderStatusSent, ChangeOrderStatusDraft},
	}
	for _, c := range allowed {
		if !c.from.CanTransitionTo(c.to) {
			t.Fatalf("%s -> %s should be allowed", c.from, c.to)
		}
	}

	denied := []struct{ from, to ChangeOrderStatus }{
		{ChangeOrderStatusSent, ChangeOrderStatusSent},
		{ChangeOrderStatusSigned, ChangeOrderStatusSent},
		{ChangeOrderStatusDraft, ChangeOrderStatusVoided},
		{ChangeOrderStatusVoided, ChangeOrderStatusDraft},
	}
	for _, c := range denied {
		if c.from.CanTransitionTo(c.to) {
			t.Fatalf("%s -> %s should be denied", c.from, c.to)
		}
	}
}

func TestActiveChangeOrders(t *testing.T) {
	history := []ChangeOrderEntry{
		{ChangeOrderNum: 1, TotalChange: 1200},
		{ChangeOrderNum: 2, TotalChange: 800},
		{ChangeOrderNum: 2, TotalChange: -800, IsReversal: true},
		{ChangeOrderNum: 3, TotalChange: 450},
	}

	active := ActiveChangeOrders(history)
	if len(active) != 2 {
		t.Fatalf("expected 2 active entries, got %d", len(active))
	}
	if active[0].ChangeOrderNum != 1 || active[1].ChangeOrderNum != 3 {
		t.Fatalf("expected entries 1 and 3, got %d and %d", active[0].ChangeOrderNum, active[1].ChangeOrderNum)
	}

	if !Reversed(history, 2) {
		t.Fatal("entry 2 should be reversed")
	}
	if Reversed(history, 1) {
		t.Fatal("entry 1 should not be reversed")
	}
}

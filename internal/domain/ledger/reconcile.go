// Package ledger is the contingency-fund reconciliation engine. The quote's
// change-order history, scrubb entries and payments form an event-sourced
// ledger: nothing stores a running balance, every read replays the logs and
// derives it fresh, so the displayed figure is always consistent with the
// history. Voids are compensating reversal entries, never destructive edits.
package ledger

import (
	"modular_homes/internal/domain/entities"
	"modular_homes/internal/domain/money"
)

// EntryKind classifies a breakdown line by how it moved the fund.
type EntryKind string

const (
	KindStarting EntryKind = "starting"
	KindDraw     EntryKind = "draw"
	KindSavings  EntryKind = "savings"
	KindOverage  EntryKind = "overage"
	KindPayment  EntryKind = "payment"
)

// BreakdownLine attributes one fund movement to its source entry. Amount is
// the signed effect on the fund: positive refills, negative draws.
type BreakdownLine struct {
	Kind   EntryKind `json:"kind"`
	Ref    string    `json:"ref"`
	Name   string    `json:"name,omitempty"`
	Amount float64   `json:"amount"`
}

// Reconciliation is the derived state of the contingency fund.
type Reconciliation struct {
	Starting        float64         `json:"starting"`
	Draws           float64         `json:"draws"`
	Savings         float64         `json:"savings"`
	Overages        float64         `json:"overages"`
	Payments        float64         `json:"payments"`
	CurrentBalance  float64         `json:"current_balance"`
	Overdraft       bool            `json:"overdraft"`
	OverdraftAmount float64         `json:"overdraft_amount"`
	Breakdown       []BreakdownLine `json:"breakdown"`
}

// ComputeContingencyBalance replays the quote's logs into the current fund
// state.
//
// Starting-fund recovery: once change orders exist, the live pricing
// contingency has been inflated by them and cannot anchor the walk anymore;
// the first history entry's own before/after snapshot
// (contingencyUsed + contingencyBalance) is the reliable anchor instead.
//
// The aggregate sums are order-independent reductions; only timeline
// rendering (see Timeline) cares about insertion order.
func ComputeContingencyBalance(q entities.Quote, contingency float64, items []TrackingItem) Reconciliation {
	var rec Reconciliation

	if len(q.ChangeOrderHistory) > 0 {
		first := q.ChangeOrderHistory[0]
		rec.Starting = money.Num(first.ContingencyUsed) + money.Num(first.ContingencyBalance)
	} else {
		rec.Starting = money.Num(contingency)
	}
	rec.Breakdown = append(rec.Breakdown, BreakdownLine{Kind: KindStarting, Ref: "starting", Amount: rec.Starting})

	for _, item := range items {
		if item.IsChangeOrderAddition {
			// Change-order additions are paid entirely from the fund,
			// never billed as a base-price increase.
			draw := money.Num(item.ContractPrice)
			rec.Draws += draw
			rec.Breakdown = append(rec.Breakdown, BreakdownLine{Kind: KindDraw, Ref: item.ServiceKey, Name: item.Name, Amount: -draw})
		}

		if item.IsAllowance {
			v := money.Variance(item.ContractPrice, item.ActualCost)
			switch {
			case v > 0:
				rec.Savings += v
				rec.Breakdown = append(rec.Breakdown, BreakdownLine{Kind: KindSavings, Ref: item.ServiceKey, Name: item.Name, Amount: v})
			case v < 0:
				rec.Overages += -v
				rec.Breakdown = append(rec.Breakdown, BreakdownLine{Kind: KindOverage, Ref: item.ServiceKey, Name: item.Name, Amount: v})
			}
			// v == 0 covers both on-budget and pending items; neither moves the fund.
		}
	}

	for _, p := range q.ScrubbPayments {
		if !p.IsContingencyPayment {
			continue
		}
		amount := money.Num(p.Amount)
		rec.Payments += amount
		rec.Breakdown = append(rec.Breakdown, BreakdownLine{Kind: KindPayment, Ref: p.ID, Amount: amount})
	}

	rec.CurrentBalance = rec.Starting - rec.Draws + rec.Savings - rec.Overages + rec.Payments
	if rec.CurrentBalance < 0 {
		rec.Overdraft = true
		rec.OverdraftAmount = -rec.CurrentBalance
	}
	return rec
}

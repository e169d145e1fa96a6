package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

// checkInvariant asserts remaining == max(0, (total - discount) - paid)
// and that status matches the amounts.
func checkInvariant(t *testing.T, b *Bill) {
	t.Helper()

	want := b.TotalAmount.Sub(b.DiscountAmount).Sub(b.PaidAmount)
	if want.IsNegative() {
		want = decimal.Zero
	}
	if !b.RemainingAmount.Equal(want) {
		t.Errorf("remaining = %s, want %s (total=%s discount=%s paid=%s)",
			b.RemainingAmount, want, b.TotalAmount, b.DiscountAmount, b.PaidAmount)
	}

	final := b.FinalAmount()
	var wantStatus string
	switch {
	case b.PaidAmount.GreaterThanOrEqual(final):
		wantStatus = BillStatusPaid
	case b.PaidAmount.IsPositive():
		wantStatus = BillStatusPartial
	default:
		wantStatus = BillStatusPending
	}
	if b.Status != wantStatus {
		t.Errorf("status = %s, want %s (paid=%s final=%s)", b.Status, wantStatus, b.PaidAmount, final)
	}
}

func TestBill_StatusWalk(t *testing.T) {
	b := &Bill{}
	b.AddCharge(dec("100"))
	checkInvariant(t, b)
	if b.Status != BillStatusPending {
		t.Errorf("expected pending after charge, got %s", b.Status)
	}
	if !b.RemainingAmount.Equal(dec("100")) {
		t.Errorf("expected remaining 100, got %s", b.RemainingAmount)
	}

	b.AddPayment(dec("40"))
	checkInvariant(t, b)
	if b.Status != BillStatusPartial {
		t.Errorf("expected partial after 40 paid, got %s", b.Status)
	}
	if !b.RemainingAmount.Equal(dec("60")) {
		t.Errorf("expected remaining 60, got %s", b.RemainingAmount)
	}

	b.AddPayment(dec("60"))
	checkInvariant(t, b)
	if b.Status != BillStatusPaid {
		t.Errorf("expected paid after settling, got %s", b.Status)
	}
	if !b.RemainingAmount.IsZero() {
		t.Errorf("expected remaining 0, got %s", b.RemainingAmount)
	}
}

func TestBill_OverpaymentClampsRemaining(t *testing.T) {
	b := &Bill{}
	b.AddCharge(dec("100"))
	// Lenient policy: 150 against remaining 100 is absorbed, no refund
	// tracking; remaining clamps at zero.
	b.AddPayment(dec("150"))
	checkInvariant(t, b)

	if !b.PaidAmount.Equal(dec("150")) {
		t.Errorf("expected paid 150, got %s", b.PaidAmount)
	}
	if !b.RemainingAmount.IsZero() {
		t.Errorf("expected remaining clamped to 0, got %s", b.RemainingAmount)
	}
	if b.Status != BillStatusPaid {
		t.Errorf("expected paid, got %s", b.Status)
	}
}

func TestBill_DiscountPercentageDrivesAmount(t *testing.T) {
	b := &Bill{}
	b.AddCharge(dec("100"))
	b.SetDiscountPercentage(dec("10"))
	checkInvariant(t, b)

	if !b.DiscountAmount.Equal(dec("10")) {
		t.Errorf("expected discount amount 10, got %s", b.DiscountAmount)
	}
	if !b.FinalAmount().Equal(dec("90")) {
		t.Errorf("expected final 90, got %s", b.FinalAmount())
	}
	if !b.RemainingAmount.Equal(dec("90")) {
		t.Errorf("expected remaining 90, got %s", b.RemainingAmount)
	}

	b.AddPayment(dec("90"))
	checkInvariant(t, b)
	if b.Status != BillStatusPaid {
		t.Errorf("expected paid against discounted base, got %s", b.Status)
	}
}

func TestBill_DiscountAmountDrivesPercentage(t *testing.T) {
	b := &Bill{}
	b.AddCharge(dec("200"))
	b.SetDiscountAmount(dec("50"))
	checkInvariant(t, b)

	if !b.DiscountPercentage.Equal(dec("25")) {
		t.Errorf("expected discount percentage 25, got %s", b.DiscountPercentage)
	}
	if !b.RemainingAmount.Equal(dec("150")) {
		t.Errorf("expected remaining 150, got %s", b.RemainingAmount)
	}
}

func TestBill_DiscountAmountOnZeroTotal(t *testing.T) {
	b := &Bill{}
	b.SetDiscountAmount(dec("10"))
	if !b.DiscountPercentage.IsZero() {
		t.Errorf("expected zero percentage on zero total, got %s", b.DiscountPercentage)
	}
	checkInvariant(t, b)
}

func TestBill_RemoveCharge(t *testing.T) {
	b := &Bill{}
	b.AddCharge(dec("100"))
	b.AddCharge(dec("50"))
	b.AddPayment(dec("30"))

	b.RemoveCharge(dec("50"))
	checkInvariant(t, b)
	if !b.TotalAmount.Equal(dec("100")) {
		t.Errorf("expected total 100 after cancellation, got %s", b.TotalAmount)
	}
	if !b.RemainingAmount.Equal(dec("70")) {
		t.Errorf("expected remaining 70, got %s", b.RemainingAmount)
	}

	// Cancelling more than the total floors at zero rather than going negative.
	b.RemoveCharge(dec("500"))
	checkInvariant(t, b)
	if !b.TotalAmount.IsZero() {
		t.Errorf("expected total floored at 0, got %s", b.TotalAmount)
	}
}

func TestBill_InvariantAcrossMutationSequences(t *testing.T) {
	type step struct {
		op     string
		amount string
	}
	sequences := []struct {
		name  string
		steps []step
	}{
		{"charges then payments", []step{
			{"charge", "120.50"}, {"charge", "79.50"}, {"pay", "100"}, {"pay", "100"},
		}},
		{"interleaved", []step{
			{"charge", "60"}, {"pay", "20"}, {"charge", "40"}, {"discountPct", "10"}, {"pay", "70"},
		}},
		{"discount before payment", []step{
			{"charge", "300"}, {"discountAmt", "45"}, {"pay", "255"},
		}},
		{"cancellation mid-flight", []step{
			{"charge", "80"}, {"charge", "20"}, {"pay", "50"}, {"cancel", "20"}, {"pay", "30"},
		}},
		{"overpayment then more charges", []step{
			{"charge", "50"}, {"pay", "75"}, {"charge", "100"},
		}},
		{"fractional amounts", []step{
			{"charge", "0.10"}, {"charge", "0.20"}, {"pay", "0.15"}, {"discountPct", "5"}, {"pay", "0.135"},
		}},
	}

	for _, seq := range sequences {
		t.Run(seq.name, func(t *testing.T) {
			b := &Bill{}
			for _, s := range seq.steps {
				amount := dec(s.amount)
				switch s.op {
				case "charge":
					b.AddCharge(amount)
				case "pay":
					b.AddPayment(amount)
				case "cancel":
					b.RemoveCharge(amount)
				case "discountPct":
					b.SetDiscountPercentage(amount)
				case "discountAmt":
					b.SetDiscountAmount(amount)
				}
				checkInvariant(t, b)
			}
		})
	}
}

func TestBill_FixedPointNoDrift(t *testing.T) {
	// 0.1 summed a thousand times must be exactly 100, which is where
	// float64 accumulation would have drifted.
	b := &Bill{}
	for i := 0; i < 1000; i++ {
		b.AddCharge(dec("0.1"))
	}
	if !b.TotalAmount.Equal(dec("100")) {
		t.Errorf("expected exact total 100, got %s", b.TotalAmount)
	}
	b.AddPayment(dec("100"))
	if !b.RemainingAmount.IsZero() || b.Status != BillStatusPaid {
		t.Errorf("expected settled bill, got remaining=%s status=%s", b.RemainingAmount, b.Status)
	}
}

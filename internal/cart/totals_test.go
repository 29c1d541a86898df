package cart

import "testing"

func TestSummarize(t *testing.T) {
	tests := map[string]struct {
		items []Item
		want  Totals
	}{
		"empty cart has no shipping": {
			items: nil,
			want:  Totals{},
		},
		"single line": {
			items: []Item{{ID: "nk-001", Price: 89990, Qty: 2}},
			want:  Totals{Count: 2, Subtotal: 179980, Shipping: ShippingFee, Total: 179980 + ShippingFee},
		},
		"several lines": {
			items: []Item{
				{ID: "nk-001", Price: 89990, Qty: 1},
				{ID: "pm-002", Price: 94990, Qty: 3},
			},
			want: Totals{Count: 4, Subtotal: 89990 + 3*94990, Shipping: 4990, Total: 89990 + 3*94990 + 4990},
		},
		"zero priced items keep shipping at zero": {
			items: []Item{{ID: "free", Price: 0, Qty: 5}},
			want:  Totals{Count: 5},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Summarize(tt.items)
			if got != tt.want {
				t.Fatalf("Summarize() = %+v, want %+v", got, tt.want)
			}
			if got.Total != got.Subtotal+got.Shipping {
				t.Fatalf("total %d != subtotal %d + shipping %d", got.Total, got.Subtotal, got.Shipping)
			}
		})
	}
}

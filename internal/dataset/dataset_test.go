// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import "testing"

func TestDatasetURL(t *testing.T) {
	tests := []struct {
		d    Dataset
		want string
	}{
		{Articles, "https://repo.hops.works/dev/jdowling/h-and-m/articles.csv"},
		{Customers, "https://repo.hops.works/dev/jdowling/h-and-m/customers.csv"},
		{Transactions, "https://repo.hops.works/dev/jdowling/h-and-m/transactions_train.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := tt.d.URL(); got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Dataset
		wantErr bool
	}{
		{"articles", Articles, false},
		{"Customers", Customers, false},
		{"  TRANSACTIONS ", Transactions, false},
		{"transactions_train", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q): expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAllOrderAndNames(t *testing.T) {
	all := All()
	want := []string{"articles", "customers", "transactions"}
	if len(all) != len(want) {
		t.Fatalf("All() returned %d datasets, want %d", len(all), len(want))
	}
	for i, d := range all {
		if d.String() != want[i] {
			t.Errorf("All()[%d] = %s, want %s", i, d, want[i])
		}
	}
}

func TestInvalidDataset(t *testing.T) {
	d := Dataset(42)
	if d.String() != "Dataset(42)" {
		t.Errorf("String() = %q", d.String())
	}
	if d.FileName() != "" {
		t.Errorf("FileName() = %q, want empty", d.FileName())
	}
}

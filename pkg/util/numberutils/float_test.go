package numberutils

import "testing"

func TestToFloat64WithError(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"31.9454", 31.9454, false},
		{" -0.1278 ", -0.1278, false},
		{"1e2", 100, false},
		{"abc", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
		{"+Inf", 0, true},
	}

	for _, tt := range tests {
		got, err := ToFloat64WithError(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ToFloat64WithError(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ToFloat64WithError(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestToOptionalFloat64(t *testing.T) {
	if value, err := ToOptionalFloat64("  "); value != nil || err != nil {
		t.Errorf("expected nil value and error for blank input, got %v / %v", value, err)
	}
	if value, err := ToOptionalFloat64("35.9284"); err != nil || value == nil || *value != 35.9284 {
		t.Errorf("unexpected result %v / %v", value, err)
	}
	if _, err := ToOptionalFloat64("north"); err == nil {
		t.Errorf("expected error for non numeric input")
	}
}

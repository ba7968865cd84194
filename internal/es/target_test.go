package es

import "testing"

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Target
		wantErr bool
	}{
		{name: "es2015", in: "es2015", want: ES2015},
		{name: "es6 alias", in: "es6", want: ES2015},
		{name: "es2019", in: "es2019", want: ES2019},
		{name: "es2024", in: "es2024", want: ES2024},
		{name: "esnext", in: "esnext", want: Next},
		{name: "uppercase", in: "ES2020", want: ES2020},
		{name: "unknown year", in: "es2014", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "latest", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTarget(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTarget(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTarget(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseTarget(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTargetOrdering(t *testing.T) {
	if !ES2020.AtLeast(ES2019) {
		t.Error("es2020 should satisfy an es2019 requirement")
	}
	if ES2018.AtLeast(ES2019) {
		t.Error("es2018 must not satisfy an es2019 requirement")
	}
	if !Next.AtLeast(ES2024) {
		t.Error("esnext should satisfy every numbered edition")
	}
}

func TestTargetStringRoundTrip(t *testing.T) {
	for tgt := ES2015; tgt <= Next; tgt++ {
		back, err := ParseTarget(tgt.String())
		if err != nil {
			t.Fatalf("%v: %v", tgt, err)
		}
		if back != tgt {
			t.Fatalf("round trip %v -> %q -> %v", tgt, tgt.String(), back)
		}
	}
}

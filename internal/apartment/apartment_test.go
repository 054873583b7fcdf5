package apartment

import (
	"errors"
	"math/rand/v2"
	"testing"
	"unicode/utf8"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Breakdown
	}{
		{"36194", Breakdown{Tower: "36", Floor: "19", Unit: "4"}},
		{"1", Breakdown{Tower: "1", Floor: "", Unit: ""}},
		{"", Breakdown{}},
		{"123", Breakdown{Tower: "12", Floor: "3", Unit: ""}},
		{"0102030", Breakdown{Tower: "01", Floor: "02", Unit: "03"}},
		{"ab-cd", Breakdown{Tower: "ab", Floor: "-c", Unit: "d"}},
		{"1é234", Breakdown{Tower: "1é", Floor: "23", Unit: "4"}},
		{"१२३४५", Breakdown{Tower: "१२", Floor: "३४", Unit: "५"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			for _, part := range []string{got.Tower, got.Floor, got.Unit} {
				if !utf8.ValidString(part) {
					t.Errorf("Parse(%q) produced invalid UTF-8 part %q", tt.input, part)
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "36194", false},
		{"leading zeros", "01010", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"too short", "3619", true},
		{"too long", "361940", true},
		{"letters", "36a94", true},
		{"padded short", " 3619", true},
		{"surrounding space", " 36194 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected error to wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestRandom_ProducesValidNumbers(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		n := Random(r)
		if err := Validate(n); err != nil {
			t.Fatalf("Random produced invalid number %q: %v", n, err)
		}
		b := Parse(n)
		if b.Tower == "00" || b.Floor == "00" {
			t.Fatalf("Random produced zero tower or floor: %q", n)
		}
	}
}

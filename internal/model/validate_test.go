package model

import (
	"errors"
	"strings"
	"testing"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple", input: "ana", want: true},
		{name: "two words", input: "Ana Maria", want: true},
		{name: "mixed letters and digits", input: "ana2", want: true},
		{name: "empty", input: "", want: false},
		{name: "whitespace only", input: "   ", want: false},
		{name: "all digits", input: "1234", want: false},
		{name: "digits with spaces", input: " 42 ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidName(tt.input); got != tt.want {
				t.Errorf("ValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidAge_Boundaries(t *testing.T) {
	tests := []struct {
		age  int
		want bool
	}{
		{age: 0, want: false},
		{age: 1, want: true},
		{age: 149, want: true},
		{age: 150, want: false},
		{age: -5, want: false},
	}

	for _, tt := range tests {
		if got := ValidAge(tt.age); got != tt.want {
			t.Errorf("ValidAge(%d) = %v, want %v", tt.age, got, tt.want)
		}
	}
}

func TestValidGrade_Boundaries(t *testing.T) {
	tests := []struct {
		grade float64
		want  bool
	}{
		{grade: -0.01, want: false},
		{grade: 0.0, want: true},
		{grade: 20.0, want: true},
		{grade: 20.01, want: false},
		{grade: 15.5, want: true},
	}

	for _, tt := range tests {
		if got := ValidGrade(tt.grade); got != tt.want {
			t.Errorf("ValidGrade(%v) = %v, want %v", tt.grade, got, tt.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "ana", want: "Ana"},
		{input: "ana maria", want: "Ana Maria"},
		{input: "  ana  ", want: "Ana"},
		{input: "ANA", want: "Ana"},
		{input: "aNa mArIa", want: "Ana Maria"},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.input); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain", input: "20", want: 20},
		{name: "surrounding spaces", input: " 20 ", want: 20},
		{name: "not a number", input: "twenty", wantErr: true},
		{name: "float input", input: "20.5", wantErr: true},
		{name: "out of range low", input: "0", wantErr: true},
		{name: "out of range high", input: "150", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAge(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAge) {
					t.Fatalf("ParseAge(%q) error = %v, want ErrInvalidAge", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseAge(%q) error = %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("ParseAge(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAge_DistinctFailures(t *testing.T) {
	_, syntaxErr := ParseAge("abc")
	_, rangeErr := ParseAge("300")

	if syntaxErr.Error() == rangeErr.Error() {
		t.Error("syntax and range failures should carry distinct messages")
	}

	if !strings.Contains(syntaxErr.Error(), "not an integer") {
		t.Errorf("syntax error = %q, want mention of integer parsing", syntaxErr)
	}

	if !strings.Contains(rangeErr.Error(), "out of range") {
		t.Errorf("range error = %q, want mention of range", rangeErr)
	}
}

func TestParseGrade(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "decimal", input: "15.5", want: 15.5},
		{name: "integer text", input: "18", want: 18},
		{name: "zero", input: "0", want: 0},
		{name: "upper bound", input: "20.0", want: 20},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "below range", input: "-0.01", wantErr: true},
		{name: "above range", input: "20.01", wantErr: true},
		{name: "nan", input: "NaN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGrade(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGrade) {
					t.Fatalf("ParseGrade(%q) error = %v, want ErrInvalidGrade", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseGrade(%q) error = %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("ParseGrade(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

package sanitizer

import (
	"strings"
	"testing"
)

const mask = "[REDACTED]"

func TestValidateAndMask(t *testing.T) {
	s := New(mask)

	tests := []struct {
		name         string
		input        string
		wantValid    bool
		wantPII      bool
		wantMasked   string
		wantWarnings int
	}{
		{
			name:       "clean answer passes through",
			input:      "We repair bicycles and have 25 years of experience.",
			wantValid:  true,
			wantPII:    false,
			wantMasked: "We repair bicycles and have 25 years of experience.",
		},
		{
			name:      "empty answer rejected",
			input:     "",
			wantValid: false,
		},
		{
			name:      "whitespace only rejected",
			input:     "   \n\t  ",
			wantValid: false,
		},
		{
			name:         "email masked",
			input:        "Reach us at owner@example.com for quotes.",
			wantValid:    true,
			wantPII:      true,
			wantMasked:   "Reach us at " + mask + " for quotes.",
			wantWarnings: 1,
		},
		{
			name:         "phone number masked",
			input:        "Call 0812-3456-7890 anytime.",
			wantValid:    true,
			wantPII:      true,
			wantMasked:   "Call " + mask + " anytime.",
			wantWarnings: 1,
		},
		{
			name:         "international phone masked",
			input:        "Call +6281234567890 anytime.",
			wantValid:    true,
			wantPII:      true,
			wantMasked:   "Call " + mask + " anytime.",
			wantWarnings: 1,
		},
		{
			name:       "bare digit run passes through",
			input:      "Order number 12345678 shipped yesterday.",
			wantValid:  true,
			wantPII:    false,
			wantMasked: "Order number 12345678 shipped yesterday.",
		},
		{
			name:       "large amount passes through",
			input:      "Revenue last year was 125000000 rupiah.",
			wantValid:  true,
			wantPII:    false,
			wantMasked: "Revenue last year was 125000000 rupiah.",
		},
		{
			name:         "card number masked",
			input:        "Deposit to 4111 1111 1111 1111 please.",
			wantValid:    true,
			wantPII:      true,
			wantMasked:   "Deposit to " + mask + "please.",
			wantWarnings: 1,
		},
		{
			name:         "identity number masked",
			input:        "My number is 3171234567890001 ok.",
			wantValid:    true,
			wantPII:      true,
			wantMasked:   "My number is " + mask + " ok.",
			wantWarnings: 1,
		},
		{
			name:         "multiple detectors fire",
			input:        "Email owner@example.com or call 0812-3456-7890.",
			wantValid:    true,
			wantPII:      true,
			wantWarnings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.ValidateAndMask(tt.input)

			if res.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v", res.IsValid, tt.wantValid)
			}
			if res.ContainsPII != tt.wantPII {
				t.Errorf("ContainsPII = %v, want %v", res.ContainsPII, tt.wantPII)
			}
			if tt.wantMasked != "" && res.MaskedText != tt.wantMasked {
				t.Errorf("MaskedText = %q, want %q", res.MaskedText, tt.wantMasked)
			}
			if tt.wantWarnings > 0 && len(res.Warnings) != tt.wantWarnings {
				t.Errorf("Warnings = %v, want %d entries", res.Warnings, tt.wantWarnings)
			}
		})
	}
}

func TestValidateAndMaskOversize(t *testing.T) {
	s := New(mask)

	res := s.ValidateAndMask(strings.Repeat("a", MaxAnswerLength+1))
	if res.IsValid {
		t.Error("expected oversize answer to be rejected")
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want exactly one", res.Warnings)
	}
}

func TestValidateAndMaskNeverLeaksOriginal(t *testing.T) {
	s := New(mask)

	inputs := []string{
		"ktp 3171234567890001 end",
		"mail me: some.person+tag@mail.example.org",
		"card 4111-1111-1111-1111 thanks",
	}
	secrets := []string{"3171234567890001", "some.person+tag@mail.example.org", "4111-1111-1111-1111"}

	for i, in := range inputs {
		res := s.ValidateAndMask(in)
		if !res.IsValid {
			t.Errorf("input %d: expected valid result", i)
			continue
		}
		if strings.Contains(res.MaskedText, secrets[i]) {
			t.Errorf("input %d: masked text still contains the raw value: %q", i, res.MaskedText)
		}
	}
}

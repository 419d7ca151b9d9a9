package config

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestWithSettersDoNotMutateOriginal(t *testing.T) {
	base := DefaultConfig()
	modified := base.WithExpansionFactor(8).WithNumColinearityTests(64).WithFiatShamirBytes(16)

	if base.ExpansionFactor == modified.ExpansionFactor {
		t.Fatal("WithExpansionFactor mutated the base config")
	}
	if modified.ExpansionFactor != 8 || modified.NumColinearityTests != 64 || modified.FiatShamirBytes != 16 {
		t.Fatalf("unexpected modified config: %+v", modified)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []*Config{
		DefaultConfig().WithExpansionFactor(0),
		DefaultConfig().WithNumColinearityTests(0),
		DefaultConfig().WithFiatShamirBytes(0),
	}
	for i, c := range cases {
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error, got nil", i)
		}
	}
}

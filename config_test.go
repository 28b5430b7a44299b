package regex4

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsBadEncoding(t *testing.T) {
	c := DefaultConfig()
	c.Encoding = Encoding(99)

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want an error")
	}
	if ce, ok := err.(*ConfigError); !ok || ce.Field != "Encoding" {
		t.Errorf("Validate() = %#v, want *ConfigError{Field: \"Encoding\"}", err)
	}
}

func TestValidateRejectsMaxCapturesOutOfRange(t *testing.T) {
	cases := []int{0, 1, 4097, -5}
	for _, n := range cases {
		c := DefaultConfig()
		c.MaxCaptures = n
		if err := c.Validate(); err == nil {
			t.Errorf("MaxCaptures=%d: Validate() = nil, want an error", n)
		}
	}
}

func TestValidateRejectsMaxTableEntriesOutOfRange(t *testing.T) {
	cases := []int{0, 7, 1_000_001}
	for _, n := range cases {
		c := DefaultConfig()
		c.MaxTableEntries = n
		if err := c.Validate(); err == nil {
			t.Errorf("MaxTableEntries=%d: Validate() = nil, want an error", n)
		}
	}
}

func TestValidateAcceptsBoundaryValues(t *testing.T) {
	c := DefaultConfig()
	c.MaxCaptures = 2
	c.MaxTableEntries = 8
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() at lower boundary = %v, want nil", err)
	}

	c.MaxCaptures = 4096
	c.MaxTableEntries = 1_000_000
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() at upper boundary = %v, want nil", err)
	}
}

package curvetrace

import "testing"

func TestDefaultConfigMatchesKnownBaseline(t *testing.T) {
	d := DefaultConfig()
	if d.K != 19 || d.N != 2 || d.M != 5 {
		t.Errorf("unexpected defaults: K=%d N=%d M=%d", d.K, d.N, d.M)
	}
	if !d.TAuto {
		t.Error("default TAuto should be true")
	}
	if d.Linkage != SingleLinkage {
		t.Error("default linkage should be SingleLinkage")
	}
	if d.IsDMax {
		t.Error("default IsDMax should be false")
	}
}

func TestApplyDefaultsFillsZeroFields(t *testing.T) {
	cfg := applyDefaults(Config{Alpha: 0.1})
	d := DefaultConfig()
	if cfg.K != d.K || cfg.N != d.N || cfg.S != d.S || cfg.M != d.M || cfg.Workers != d.Workers {
		t.Errorf("applyDefaults did not fill zero fields: %+v", cfg)
	}
	if cfg.Alpha != 0.1 {
		t.Errorf("applyDefaults overwrote an explicitly set field: %v", cfg.Alpha)
	}
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	cases := []Config{
		{R: -1, K: 5, N: 1, S: 1, M: 1},
		{K: 1, N: 1, S: 1, M: 1},
		{K: 5, N: 0, S: 1, M: 1},
		{K: 5, N: 1, Alpha: 3, S: 1, M: 1},
		{K: 5, N: 1, S: 0, M: 1},
		{K: 5, N: 1, S: 1, M: 0},
		{K: 5, N: 1, S: 1, M: 1, IsDMax: true, DMax: 0},
	}
	for i, cfg := range cases {
		if err := validateConfig(cfg); err == nil {
			t.Errorf("case %d: expected an error for %+v", i, cfg)
		}
	}
}

func TestValidateConfigAcceptsDefaults(t *testing.T) {
	if err := validateConfig(DefaultConfig()); err != nil {
		t.Errorf("DefaultConfig() should be valid, got %v", err)
	}
}

func TestScaleByCharacteristicLength(t *testing.T) {
	cfg := Config{R: 2, S: 0.3, DMax: 1, T: 7}
	scaled := ScaleByCharacteristicLength(cfg, 5)

	if scaled.R != 10 || scaled.S != 1.5 || scaled.DMax != 5 {
		t.Errorf("ScaleByCharacteristicLength scaled unexpectedly: %+v", scaled)
	}
	if scaled.T != 7 {
		t.Errorf("ScaleByCharacteristicLength should not touch T, got %v", scaled.T)
	}
}

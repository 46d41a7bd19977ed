package curvetrace

import "fmt"

// Config holds every tunable of the four-stage pipeline. All radii,
// distances and the triplet-metric scale are in the caller's coordinate
// units; ScaleByCharacteristicLength can be used to derive them from a
// characteristic length rather than hardcoding absolute numbers.
type Config struct {
	// R is the smoothing radius. 0 disables smoothing.
	R float64
	// K is the neighborhood size used by the triplet generator.
	K int
	// N caps the number of triplets kept per midpoint.
	N int
	// Alpha is the angular tolerance for triplet generation, in [0, 2].
	Alpha float64
	// S is the triplet-metric scale, strictly positive.
	S float64
	// T is the fixed dendrogram cut distance, used when TAuto is false.
	T float64
	// TAuto selects the automatic dendrogram cut rule over the fixed T.
	TAuto bool
	// Linkage selects the agglomerative linkage rule.
	Linkage Linkage
	// M is the minimum cluster size, in triplets.
	M int
	// DMax is the gap-splitter's edge-length threshold, used when IsDMax
	// is true. It is a plain (non-squared) distance.
	DMax float64
	// IsDMax enables the gap-splitter.
	IsDMax bool
	// Ordered enforces a.index <= b.index <= c.index during triplet
	// generation. A PointCloud built with Ordered(true) enforces it as
	// well.
	Ordered bool
	// Workers bounds how many goroutines the smoother and the
	// triplet-distance matrix builder may use. Values <= 1 run
	// sequentially.
	Workers int
}

// DefaultConfig returns the pipeline's baseline configuration, matching
// original_source/src/option.cpp's Opt::Opt() defaults.
func DefaultConfig() Config {
	return Config{
		R:       2,
		K:       19,
		N:       2,
		Alpha:   0.03,
		S:       0.3,
		T:       0,
		TAuto:   true,
		Linkage: SingleLinkage,
		M:       5,
		DMax:    0,
		IsDMax:  false,
		Ordered: false,
		Workers: 1,
	}
}

// applyDefaults fills in zero-valued fields of cfg that have no
// meaningful zero, using DefaultConfig's values. Only K, N, S, M and
// Workers are filled; every other field, including R, Alpha and T, is
// used as given, so a zero R in a bare Config literal disables smoothing.
// A zero M is always replaced, so M cannot be set to 0.
func applyDefaults(cfg Config) Config {
	d := DefaultConfig()
	if cfg.K == 0 {
		cfg.K = d.K
	}
	if cfg.N == 0 {
		cfg.N = d.N
	}
	if cfg.S == 0 {
		cfg.S = d.S
	}
	if cfg.M == 0 {
		cfg.M = d.M
	}
	if cfg.Workers == 0 {
		cfg.Workers = d.Workers
	}
	return cfg
}

// validateConfig rejects configurations the pipeline cannot run with.
func validateConfig(cfg Config) error {
	if cfg.R < 0 {
		return fmt.Errorf("curvetrace: R must be >= 0, got %g", cfg.R)
	}
	if cfg.K < 2 {
		return fmt.Errorf("curvetrace: K must be >= 2, got %d", cfg.K)
	}
	if cfg.N < 1 {
		return fmt.Errorf("curvetrace: N must be >= 1, got %d", cfg.N)
	}
	if cfg.Alpha < 0 || cfg.Alpha > 2 {
		return fmt.Errorf("curvetrace: Alpha must be in [0, 2], got %g", cfg.Alpha)
	}
	if cfg.S <= 0 {
		return fmt.Errorf("curvetrace: S must be > 0, got %g", cfg.S)
	}
	if cfg.M < 1 {
		return fmt.Errorf("curvetrace: M must be >= 1, got %d", cfg.M)
	}
	if cfg.IsDMax && cfg.DMax <= 0 {
		return fmt.Errorf("curvetrace: DMax must be > 0 when IsDMax is set, got %g", cfg.DMax)
	}
	return nil
}

// ScaleByCharacteristicLength returns a copy of cfg with R, S and DMax
// multiplied by dnn, the characteristic length (or its square root, per
// the caller's own convention — the core treats dnn as an opaque
// multiplier and never computes it itself). T is left untouched, since a
// fixed cut distance is defined directly in triplet-metric units, not in
// point-coordinate units.
func ScaleByCharacteristicLength(cfg Config, dnn float64) Config {
	cfg.R *= dnn
	cfg.S *= dnn
	cfg.DMax *= dnn
	return cfg
}

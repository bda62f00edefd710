package core

// Config defines settings shared across the signal pipeline.
type Config struct {
	SampleRate    float64
	BlockSize     int
	PreviewRateHz float64
	PreviewPoints int
	RingCapacity  int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns defaults suited to common audio devices and a
// smooth preview cadence.
func DefaultConfig() Config {
	return Config{
		SampleRate:    44100,
		BlockSize:     1024,
		PreviewRateHz: 50,
		PreviewPoints: 2000,
		RingCapacity:  8192,
	}
}

// WithSampleRate sets the audio sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the audio pull block size.
func WithBlockSize(blockSize int) Option {
	return func(cfg *Config) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithPreviewRateHz sets the preview loop frame rate.
func WithPreviewRateHz(rateHz float64) Option {
	return func(cfg *Config) {
		if rateHz > 0 {
			cfg.PreviewRateHz = rateHz
		}
	}
}

// WithPreviewPoints sets the per-frame decimation budget.
func WithPreviewPoints(points int) Option {
	return func(cfg *Config) {
		if points > 0 {
			cfg.PreviewPoints = points
		}
	}
}

// WithRingCapacity sets the preview ring buffer capacity in XY pairs.
func WithRingCapacity(capacity int) Option {
	return func(cfg *Config) {
		if capacity > 0 {
			cfg.RingCapacity = capacity
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

package bfavm

const (
	DefaultCells    = 30_000
	DefaultMaxValue = 255
	DefaultMaxSteps = 100_000
)

// Config holds the tunable parameters of a Machine. Zero or negative numbers select the defaults.
type Config struct {
	Cells    int  `json:"cells,omitempty" yaml:"cells,omitempty"`
	MaxValue int  `json:"max_value,omitempty" yaml:"max_value,omitempty"`
	MaxSteps int  `json:"max_steps,omitempty" yaml:"max_steps,omitempty"`
	Debug    bool `json:"debug,omitempty" yaml:"debug,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Cells:    DefaultCells,
		MaxValue: DefaultMaxValue,
		MaxSteps: DefaultMaxSteps,
	}
}

func (c Config) withDefaults() Config {
	if c.Cells <= 0 {
		c.Cells = DefaultCells
	}
	if c.MaxValue <= 0 {
		c.MaxValue = DefaultMaxValue
	}
	if c.MaxSteps <= 0 {
		c.MaxSteps = DefaultMaxSteps
	}
	return c
}

package modes

type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// Interactive reports whether the mode may talk to a human, such as opening a REPL.
func (m Mode) Interactive() bool {
	return m == ModeProduction
}

package bfavm

// RenderOutput joins the printed characters into a string.
func RenderOutput(output []rune) string {
	return string(output)
}

// RenderOutput returns everything printed so far.
func (m *Machine) RenderOutput() string {
	return RenderOutput(m.Output)
}

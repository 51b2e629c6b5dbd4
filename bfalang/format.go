package bfalang

import "strings"

// Format renders the program as keyword-per-line text, indenting loop bodies by two spaces.
func Format(program []Instruction) string {
	buf := new(strings.Builder)
	format(buf, program, 0)
	return buf.String()
}

func format(buf *strings.Builder, program []Instruction, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, inst := range program {
		buf.WriteString(indent)
		if inst.Op != OpLoop {
			buf.WriteString(inst.Op.String())
			buf.WriteByte('\n')
			continue
		}
		buf.WriteString(KeywordLoopStart)
		buf.WriteByte('\n')
		format(buf, inst.Body, depth+1)
		buf.WriteString(indent)
		buf.WriteString(KeywordLoopEnd)
		buf.WriteByte('\n')
	}
}

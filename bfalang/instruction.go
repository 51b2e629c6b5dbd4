package bfalang

import "fmt"

type Op uint8

const (
	OpInc Op = iota + 1
	OpDec
	OpLeft
	OpRight
	OpPrint
	OpLoop
)

func (o Op) String() string {
	switch o {
	case OpInc:
		return KeywordInc
	case OpDec:
		return KeywordDec
	case OpLeft:
		return KeywordLeft
	case OpRight:
		return KeywordRight
	case OpPrint:
		return KeywordPrint
	case OpLoop:
		return "LOOP"
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Instruction is a node of the program tree.
// Body is only used by OpLoop and may contain further loops.
type Instruction struct {
	Op   Op
	Body []Instruction
}

var simpleOps = map[string]Op{
	KeywordInc:   OpInc,
	KeywordDec:   OpDec,
	KeywordLeft:  OpLeft,
	KeywordRight: OpRight,
	KeywordPrint: OpPrint,
}

// Depth returns the maximum loop nesting depth of the program.
func Depth(program []Instruction) int {
	ret := 0
	for _, inst := range program {
		if inst.Op != OpLoop {
			continue
		}
		ret = max(ret, 1+Depth(inst.Body))
	}
	return ret
}

// Count returns the number of instruction nodes in the tree, loops included.
func Count(program []Instruction) int {
	ret := 0
	for _, inst := range program {
		ret++
		if inst.Op == OpLoop {
			ret += Count(inst.Body)
		}
	}
	return ret
}

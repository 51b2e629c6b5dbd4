package bfalang

// Parse builds the instruction tree from a token sequence.
// Tokens are expected to have passed Validate, but unknown tokens are still rejected.
func Parse(tokens []string) ([]Instruction, error) {
	type frame struct {
		body  *[]Instruction
		start int
	}

	var root []Instruction
	stack := []frame{
		{body: &root, start: -1},
	}

	for i, token := range tokens {
		top := stack[len(stack)-1]

		switch token {

		case KeywordLoopStart:
			*top.body = append(*top.body, Instruction{
				Op: OpLoop,
			})
			loop := &(*top.body)[len(*top.body)-1]
			stack = append(stack, frame{
				body:  &loop.Body,
				start: i,
			})

		case KeywordLoopEnd:
			if len(stack) == 1 {
				return nil, wrap(&StructuralError{
					Kind:  ErrUnmatchedLoopEnd,
					Index: i,
					Token: token,
				})
			}
			stack = stack[:len(stack)-1]

		default:
			op, ok := simpleOps[token]
			if !ok {
				return nil, wrap(&StructuralError{
					Kind:  ErrUnrecognizedToken,
					Index: i,
					Token: token,
				})
			}
			*top.body = append(*top.body, Instruction{
				Op: op,
			})

		}
	}

	if len(stack) > 1 {
		return nil, wrap(&StructuralError{
			Kind:  ErrUnclosedLoop,
			Index: stack[len(stack)-1].start,
			Token: KeywordLoopStart,
		})
	}

	return root, nil
}

// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

// Encode computes a sequential command stream that reconstructs v from r,
// using the algorithm selected by algorithm (§4.4-4.6). opts may be nil
// (DefaultEncodeOptions applies).
func Encode(algorithm Algorithm, r, v []byte, opts *EncodeOptions) ([]Command, error) {
	o := opts.normalized()
	diag := newDiagnostics(o.Verbose)

	var commands []Command
	var err error
	switch algorithm {
	case AlgoGreedy:
		commands, err = encodeGreedy(r, v, o)
	case AlgoOnePass:
		commands, err = encodeOnePass(r, v, o)
	case AlgoCorrecting:
		commands, err = encodeCorrecting(r, v, o)
	default:
		return nil, ErrInvalidArgument
	}
	if err != nil {
		return nil, err
	}

	diag.summarizeCommands("encode."+algorithm.String(), commands)
	return commands, nil
}

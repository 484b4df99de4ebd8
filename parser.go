package logscreen

import "strconv"

// parseANSI decodes a chunk of terminal output into an ordered list of actions.
//
// The function is pure and resumable: when the input ends inside an escape
// sequence, the unterminated tail (from the leading ESC onward) is emitted as
// a trailing Remainder action. Prepending that remainder to the next chunk
// continues parsing as if the stream had never been cut.
func parseANSI(input string) []Action {
	var actions []Action
	start := -1 // start of the current printable run, -1 if none

	flush := func(end int) {
		if start >= 0 && end > start {
			actions = append(actions, Print{Text: input[start:end]})
		}
		start = -1
	}

	i := 0
	for i < len(input) {
		switch input[i] {
		case '\r':
			flush(i)
			actions = append(actions, CarriageReturn{})
			i++

		case '\n':
			flush(i)
			actions = append(actions, Linebreak{})
			i++

		case 0x1b:
			flush(i)
			if i == len(input)-1 {
				return append(actions, Remainder{Text: input[i:]})
			}
			if input[i+1] != '[' {
				// Not a CSI introducer. Drop the lone ESC and reprocess
				// the following byte normally.
				i++
				continue
			}

			// Scan for the final byte of the CSI sequence.
			j := i + 2
			for j < len(input) && !isCSIFinal(input[j]) {
				j++
			}
			if j == len(input) {
				return append(actions, Remainder{Text: input[i:]})
			}
			actions = append(actions, csiActions(input[i+2:j], input[j])...)
			i = j + 1

		default:
			if start < 0 {
				start = i
			}
			i++
		}
	}

	flush(len(input))
	return actions
}

// isCSIFinal reports whether b terminates a CSI sequence (ECMA-48 final byte range).
func isCSIFinal(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}

// csiActions interprets one complete CSI sequence. Sequences with an unknown
// final byte or an unparseable parameter list yield no actions.
func csiActions(params string, final byte) []Action {
	codes, ok := csiParams(params)
	if !ok {
		return nil
	}

	switch final {
	case 'm':
		return sgrActions(codes)
	case 'A':
		return []Action{CursorUp{N: paramOr(codes, 0, 1)}}
	case 'B':
		return []Action{CursorDown{N: paramOr(codes, 0, 1)}}
	case 'C':
		return []Action{CursorForward{N: paramOr(codes, 0, 1)}}
	case 'D':
		return []Action{CursorBack{N: paramOr(codes, 0, 1)}}
	case 'H', 'f':
		return []Action{CursorPosition{Row: paramOr(codes, 0, 1), Col: paramOr(codes, 1, 1)}}
	case 'G':
		return []Action{CursorColumn{Col: paramOr(codes, 0, 1)}}
	case 's':
		return []Action{SaveCursorPosition{}}
	case 'u':
		return []Action{RestoreCursorPosition{}}
	case 'K':
		switch paramOr(codes, 0, 0) {
		case 0:
			return []Action{EraseLine{Mode: EraseToEnd}}
		case 1:
			return []Action{EraseLine{Mode: EraseToBeginning}}
		case 2:
			return []Action{EraseLine{Mode: EraseAll}}
		}
		return nil
	}

	return nil
}

// csiParams splits a parameter byte string into decimal integers.
// An empty string yields no codes. Any non-numeric or empty parameter makes
// the whole sequence invalid.
func csiParams(params string) ([]int, bool) {
	if params == "" {
		return nil, true
	}

	var codes []int
	field := 0
	for i := 0; i <= len(params); i++ {
		if i == len(params) || params[i] == ';' {
			n, err := strconv.Atoi(params[field:i])
			if err != nil || n < 0 || params[field] == '+' {
				return nil, false
			}
			codes = append(codes, n)
			field = i + 1
		}
	}
	return codes, true
}

// paramOr returns the i-th parameter, or def when absent.
func paramOr(codes []int, i, def int) int {
	if i >= len(codes) {
		return def
	}
	return codes[i]
}

// sgrActions maps SGR parameter codes to style actions. Unknown codes are
// ignored. An empty parameter list is invalid and drops the sequence.
//
// TODO: treat ESC[m (no parameters) as equivalent to ESC[0m.
func sgrActions(codes []int) []Action {
	var actions []Action
	for _, code := range codes {
		switch {
		case code == 0:
			actions = append(actions,
				SetForeground{Color: ColorNone},
				SetBackground{Color: ColorNone},
				SetBold{On: false},
				SetFaint{On: false},
				SetItalic{On: false},
				SetUnderline{On: false},
				SetInverted{On: false},
			)
		case code == 1:
			actions = append(actions, SetBold{On: true})
		case code == 2:
			actions = append(actions, SetFaint{On: true})
		case code == 3:
			actions = append(actions, SetItalic{On: true})
		case code == 4:
			actions = append(actions, SetUnderline{On: true})
		case code == 7:
			actions = append(actions, SetInverted{On: true})
		case code >= 30 && code <= 37:
			actions = append(actions, SetForeground{Color: ColorBlack + Color(code-30)})
		case code >= 40 && code <= 47:
			actions = append(actions, SetBackground{Color: ColorBlack + Color(code-40)})
		case code >= 90 && code <= 97:
			actions = append(actions, SetForeground{Color: ColorBrightBlack + Color(code-90)})
		case code >= 100 && code <= 107:
			actions = append(actions, SetBackground{Color: ColorBrightBlack + Color(code-100)})
		}
	}
	return actions
}

package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/dovetail/pkg/joint"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource transforms script source before handing it to
// zygomys:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal),
//     so keyword symbols need not be registered as globals.
//  2. ; line comments -> // comments (zygomys has no Lisp comments).
//  3. Kebab-case identifiers -> underscore form (zygomys reads a
//     hyphen as subtraction).
//
// All three respect double- and backtick-quoted string boundaries.
func preprocessSource(source string) string {
	out := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		switch {
		case b[i] == '"' || b[i] == '`':
			quote := b[i]
			out = append(out, b[i])
			i++
			for i < len(b) && b[i] != quote {
				if quote == '"' && b[i] == '\\' && i+1 < len(b) {
					out = append(out, b[i], b[i+1])
					i += 2
					continue
				}
				out = append(out, b[i])
				i++
			}
			if i < len(b) {
				out = append(out, b[i])
				i++
			}

		case b[i] == ';':
			out = append(out, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				out = append(out, b[i])
				i++
			}

		case b[i] == ':' && i+1 < len(b) && isLetter(b[i+1]):
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			out = append(out, '"')
			out = append(out, []byte(kwPrefix)...)
			out = append(out, b[i+1:j]...)
			out = append(out, '"')
			i = j

		case b[i] == '-' && i > 0 && i+1 < len(b) && isIdentChar(b[i-1]) && isLetter(b[i+1]):
			// Hyphen between identifier characters, not a minus.
			out = append(out, '_')
			i++

		default:
			out = append(out, b[i])
			i++
		}
	}
	return string(out)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string, returning
// the keyword name without the prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// parseKWArgs collects the keyword arguments of a builtin call.
func parseKWArgs(args []zygo.Sexp) map[string]zygo.Sexp {
	kw := make(map[string]zygo.Sexp)
	for i := 0; i < len(args); {
		name, ok := isKW(args[i])
		if ok && i+1 < len(args) {
			kw[name] = args[i+1]
			i += 2
			continue
		}
		i++
	}
	return kw
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toName extracts a keyword name or plain string from a Sexp, so
// scripts may write :medium or "medium" interchangeably.
func toName(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// collector receives the parameter set declared by the script.
type collector struct {
	params *joint.Params
}

// registerBuiltins installs the dovetail DSL into a zygomys
// environment. Source must be preprocessed with preprocessSource
// first so :keyword tokens are recognizable.
func registerBuiltins(env *zygo.Zlisp, c *collector) {

	// -----------------------------------------------------------------------
	// (dovetail :width 100 :height 15 :division :medium :ratio 2
	//           :variant :straight :depth 20)
	//
	// width and height are required; division, ratio and variant fall
	// back to their defaults, depth to the board height.
	// -----------------------------------------------------------------------
	env.AddFunction("dovetail", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if c.params != nil {
			return zygo.SexpNull, fmt.Errorf("dovetail: joint already declared; a script declares exactly one")
		}

		kw := parseKWArgs(args)
		p := joint.Params{
			Division: joint.DivisionMedium.String(),
			Ratio:    joint.DefaultRatio,
			Variant:  joint.VariantStraight.String(),
		}

		v, ok := kw["width"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("dovetail: :width is required")
		}
		f, err := toFloat64(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("dovetail: width: %w", err)
		}
		p.Width = f

		v, ok = kw["height"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("dovetail: :height is required")
		}
		f, err = toFloat64(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("dovetail: height: %w", err)
		}
		p.Height = f
		p.Depth = f // default: board thickness

		if v, ok := kw["division"]; ok {
			s, err := toName(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("dovetail: division: %w", err)
			}
			if _, err := joint.ParseDivision(s); err != nil {
				return zygo.SexpNull, fmt.Errorf("dovetail: %w", err)
			}
			p.Division = s
		}
		if v, ok := kw["ratio"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("dovetail: ratio: %w", err)
			}
			p.Ratio = f
		}
		if v, ok := kw["variant"]; ok {
			s, err := toName(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("dovetail: variant: %w", err)
			}
			if _, err := joint.ParseVariant(s); err != nil {
				return zygo.SexpNull, fmt.Errorf("dovetail: %w", err)
			}
			p.Variant = s
		}
		if v, ok := kw["depth"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("dovetail: depth: %w", err)
			}
			p.Depth = f
		}

		c.params = &p
		return zygo.SexpNull, nil
	})
}

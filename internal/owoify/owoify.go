// Package owoify turns plain text into its owo, uwu or uvu rendition.
//
// Levels are cumulative: uwu applies its own rules before the owo rules and
// uvu applies its rules before both. The output is deterministic for a given
// input and level.
package owoify

import "regexp"

// Level is the intensity of the transformation.
type Level int

const (
	Owo Level = iota
	Uwu
	Uvu
)

// Levels lists every level from mildest to most extreme.
func Levels() []Level {
	return []Level{Owo, Uwu, Uvu}
}

func (l Level) String() string {
	switch l {
	case Uwu:
		return "uwu"
	case Uvu:
		return "uvu"
	default:
		return "owo"
	}
}

type rule struct {
	re   *regexp.Regexp
	repl string
}

func r(pattern, repl string) rule {
	return rule{re: regexp.MustCompile(pattern), repl: repl}
}

var specificRules = []rule{
	r(`\bfuc`, "fwuc"),
	r(`\bFuc`, "Fwuc"),
	r(`\bFUC`, "FWUC"),
	r(`\bmom`, "mwom"),
	r(`\bMom`, "Mwom"),
	r(`\btime\b`, "tim"),
	r(`\bme\b`, "mwe"),
	r(`n([aeiou])`, "ny$1"),
	r(`N([aeiou])`, "Ny$1"),
	r(`N([AEIOU])`, "NY$1"),
	r(`over`, "owor"),
	r(`ove`, "uv"),
	r(`\bthe\b`, "teh"),
	r(`\bThe\b`, "Teh"),
	r(`\byou\b`, "u"),
	r(`\bYou\b`, "U"),
	r(`\bread`, "wead"),
}

var owoRules = []rule{
	r(`ll`, "ww"),
	r(`LL`, "WW"),
	r(`old`, "owld"),
	r(`ol`, "owl"),
	r(`[lr]o`, "wo"),
	r(`[LR]([oO])`, "W$1"),
	r(`fi`, "fwi"),
	r(`ver`, "wer"),
	r(`ly`, "wy"),
	r(`ple`, "pwe"),
	r(`nr`, "nw"),
	r(`([bcdfghjkmnpqstxz])r`, "${1}w"),
	r(`([BCDFGHJKMNPQSTXZ])R`, "${1}W"),
}

var uwuRules = []rule{
	r(`\bthat\b`, "dat"),
	r(`\bThat\b`, "Dat"),
	r(`th([^eE]|$)`, "f$1"),
	r(`le\b`, "wal"),
	r(`ve`, "we"),
	r(`ry`, "wwy"),
	r(`[rl]`, "w"),
	r(`[RL]`, "W"),
	r(`!+`, "! >w<"),
}

var uvuRules = []rule{
	r(`ew`, "uwu"),
	r(`\bhey\b`, "hay"),
	r(`\bHey\b`, "Hay"),
	r(`\bdead\b`, "ded"),
	r(`\b([Oo])h\b`, "${1}wo"),
	r(`\?+`, "? uvu"),
}

// Owoify transforms source at the given level.
func Owoify(source string, level Level) string {
	if source == "" {
		return ""
	}

	out := apply(source, specificRules)
	switch level {
	case Uvu:
		out = apply(out, uvuRules)
		out = apply(out, uwuRules)
	case Uwu:
		out = apply(out, uwuRules)
	}
	return apply(out, owoRules)
}

func apply(s string, rules []rule) string {
	for _, rl := range rules {
		s = rl.re.ReplaceAllString(s, rl.repl)
	}
	return s
}

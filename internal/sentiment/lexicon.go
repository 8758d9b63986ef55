package sentiment

// Weighted sentiment lexicon for news headlines and article text. Weights
// stay within [-10, +10]; the tables are loaded once and never mutated.
var lexicon = map[string]float64{
	// positive
	"win":           2,
	"wins":          2,
	"won":           2,
	"winner":        2,
	"award":         2,
	"awarded":       2,
	"prestigious":   1.5,
	"success":       2.5,
	"successful":    2,
	"breakthrough":  3,
	"record":        1,
	"growth":        2,
	"grow":          1.5,
	"gain":          1.5,
	"gains":         1.5,
	"surge":         1.5,
	"rally":         1.5,
	"boost":         1.5,
	"improve":       2,
	"improved":      2,
	"improvement":   2,
	"recovery":      2,
	"recover":       1.5,
	"profit":        1.5,
	"profits":       1.5,
	"strong":        1,
	"strength":      1,
	"best":          1.5,
	"better":        1,
	"great":         1.5,
	"good":          1,
	"excellent":     2.5,
	"outstanding":   2.5,
	"innovative":    1.5,
	"innovation":    1.5,
	"efficient":     1.5,
	"progress":      1.5,
	"promising":     1.5,
	"hope":          1,
	"hopeful":       1.5,
	"optimism":      2,
	"optimistic":    2,
	"celebrate":     2,
	"celebrates":    2,
	"celebration":   2,
	"achievement":   2,
	"achieve":       1.5,
	"thrive":        2,
	"thriving":      2,
	"benefit":       1.5,
	"benefits":      1.5,
	"support":       1,
	"agreement":     1,
	"peace":         2,
	"cure":          2.5,
	"safe":          1,
	"safer":         1.5,
	"approval":      1.5,
	"approved":      1.5,
	"praise":        2,
	"praised":       2,
	"hero":          2,
	"rescue":        1.5,
	"rescued":       2,
	"milestone":     1.5,
	"landmark":      1,
	"soar":          1.5,
	"soars":         1.5,

	// negative
	"massacre":      -5,
	"chaos":         -3,
	"crisis":        -3,
	"disaster":      -4,
	"catastrophe":   -4,
	"catastrophic":  -4,
	"war":           -3,
	"attack":        -3,
	"attacks":       -3,
	"terror":        -4,
	"terrorist":     -4,
	"bomb":          -4,
	"bombing":       -4,
	"kill":          -4,
	"killed":        -4,
	"kills":         -4,
	"death":         -3,
	"deaths":        -3,
	"dead":          -3,
	"dies":          -3,
	"died":          -3,
	"murder":        -4,
	"violence":      -3,
	"violent":       -3,
	"crash":         -3,
	"crashes":       -3,
	"collapse":      -3,
	"collapsed":     -3,
	"fail":          -2.5,
	"fails":         -2.5,
	"failed":        -2.5,
	"failure":       -2.5,
	"loss":          -2,
	"losses":        -2,
	"lose":          -2,
	"lost":          -1.5,
	"decline":       -2,
	"declines":      -2,
	"drop":          -1.5,
	"drops":         -1.5,
	"plunge":        -2.5,
	"plunges":       -2.5,
	"fear":          -2,
	"fears":         -2,
	"threat":        -2.5,
	"threatens":     -2.5,
	"warning":       -1.5,
	"warns":         -1.5,
	"fraud":         -3,
	"scandal":       -3,
	"corruption":    -3,
	"lawsuit":       -1.5,
	"bankruptcy":    -3,
	"bankrupt":      -3,
	"recession":     -3,
	"layoffs":       -2.5,
	"unemployment":  -2,
	"shortage":      -2,
	"outbreak":      -3,
	"pandemic":      -3,
	"infection":     -2,
	"injured":       -2.5,
	"injuries":      -2.5,
	"damage":        -2,
	"destroyed":     -3,
	"destruction":   -3,
	"flood":         -2.5,
	"earthquake":    -3,
	"wildfire":      -2.5,
	"drought":       -2,
	"poverty":       -2.5,
	"hunger":        -2.5,
	"conflict":      -2.5,
	"dispute":       -1.5,
	"protest":       -1,
	"riot":          -3,
	"riots":         -3,
	"toxic":         -2.5,
	"worst":         -2.5,
	"bad":           -1.5,
	"worse":         -2,
	"dangerous":     -2.5,
	"danger":        -2.5,
	"emergency":     -2,
	"victim":        -2.5,
	"victims":       -2.5,
	"hostage":       -3.5,
	"shooting":      -4,
	"explosion":     -3,
	"sanctions":     -1.5,
	"ban":           -1,
	"banned":        -1,
	"cancel":        -1,
	"cancelled":     -1,
	"delay":         -1,
	"delayed":       -1,
}

// negations flip the sign of the next scored token.
var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"without": true,
	"hardly":  true,
	"barely":  true,
	"neither": true,
	"nor":     true,
	"cannot":  true,
	"can't":   true,
	"don't":   true,
	"doesn't": true,
	"didn't":  true,
	"isn't":   true,
	"wasn't":  true,
	"aren't":  true,
	"won't":   true,
}

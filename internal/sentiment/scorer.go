// Package sentiment implements a lexicon-based polarity scorer in the style
// of VADER: per-word valence lookups adjusted for negation, degree modifiers,
// capitalization and punctuation emphasis, summarized into a normalized
// compound score in [-1, 1].
package sentiment

import (
	"math"
	"strings"
	"time"
	"unicode"

	"review_radar/internal/adapters/observability"
	"review_radar/internal/domain"
)

const (
	negationScalar = -0.74 // flip factor when a negation precedes a valenced word
	capsIncrement  = 0.733 // emphasis for an ALL-CAPS valenced word in mixed-case text
	exclamationInc = 0.292 // per trailing "!", capped at 4
	alpha          = 15.0  // normalization constant for the compound score
)

// distance decay for boosters two and three words back
var boosterDecay = [3]float64{1.0, 0.95, 0.9}

// Analyzer is the production domain.Scorer. Stateless and safe for
// concurrent use.
type Analyzer struct{}

func NewAnalyzer() *Analyzer { return &Analyzer{} }

func (a *Analyzer) Score(text string) (domain.Sentiment, error) {
	start := time.Now()
	s := analyze(text)
	observability.ObserveScore(time.Since(start))
	return s, nil
}

func analyze(text string) domain.Sentiment {
	words := fields(text)
	if len(words) == 0 {
		return domain.Sentiment{Neu: 1}
	}

	mixedCase := hasMixedCase(words)
	valences := make([]float64, len(words))

	for i, w := range words {
		lower := strings.ToLower(w)
		v, ok := lexicon[lower]
		if !ok {
			continue
		}

		if mixedCase && isUpper(w) {
			if v > 0 {
				v += capsIncrement
			} else {
				v -= capsIncrement
			}
		}

		// degree modifiers up to three words back, decaying with distance
		for d := 1; d <= 3 && i-d >= 0; d++ {
			prev := strings.ToLower(words[i-d])
			if _, valenced := lexicon[prev]; valenced {
				continue
			}
			if b, ok := boosters[prev]; ok {
				b *= boosterDecay[d-1]
				if mixedCase && isUpper(words[i-d]) {
					if v > 0 {
						b += capsIncrement
					} else {
						b -= capsIncrement
					}
				}
				if v > 0 {
					v += b
				} else {
					v -= b
				}
			}
		}

		// negation window of three preceding words
		for d := 1; d <= 3 && i-d >= 0; d++ {
			if _, neg := negations[strings.ToLower(words[i-d])]; neg {
				v *= negationScalar
				break
			}
		}

		valences[i] = v
	}

	var sum float64
	for _, v := range valences {
		sum += v
	}

	punct := punctuationEmphasis(text)
	if sum > 0 {
		sum += punct
	} else if sum < 0 {
		sum -= punct
	}

	compound := sum / math.Sqrt(sum*sum+alpha)
	compound = math.Max(-1, math.Min(1, compound))

	var posSum, negSum float64
	var neuCount int
	for i, v := range valences {
		switch {
		case v > 0:
			posSum += v + 1
		case v < 0:
			negSum += v - 1
		default:
			if _, ok := lexicon[strings.ToLower(words[i])]; !ok {
				neuCount++
			}
		}
	}
	if punct != 0 {
		if posSum > math.Abs(negSum) {
			posSum += punct
		} else if posSum < math.Abs(negSum) {
			negSum -= punct
		}
	}

	total := posSum + math.Abs(negSum) + float64(neuCount)
	var pos, neg, neu float64
	if total > 0 {
		pos = round3(math.Abs(posSum / total))
		neg = round3(math.Abs(negSum / total))
		neu = round3(float64(neuCount) / total)
	} else {
		neu = 1
	}

	return domain.Sentiment{
		Neg:      neg,
		Neu:      neu,
		Pos:      pos,
		Compound: round4(compound),
	}
}

// fields splits on whitespace and trims surrounding punctuation, keeping
// in-word apostrophes so contractions survive for negation lookups.
func fields(text string) []string {
	raw := strings.Fields(text)
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
		})
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

func punctuationEmphasis(text string) float64 {
	ex := strings.Count(text, "!")
	if ex > 4 {
		ex = 4
	}
	emph := float64(ex) * exclamationInc

	qm := strings.Count(text, "?")
	if qm > 1 {
		if qm <= 3 {
			emph += float64(qm) * 0.18
		} else {
			emph += 0.96
		}
	}
	return emph
}

func isUpper(w string) bool {
	hasLetter := false
	for _, r := range w {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// hasMixedCase reports whether at least one word is ALL-CAPS and at least one
// is not; emphasis only applies when shouting stands out.
func hasMixedCase(words []string) bool {
	upper := 0
	for _, w := range words {
		if isUpper(w) {
			upper++
		}
	}
	return upper > 0 && upper < len(words)
}

func round3(f float64) float64 { return math.Round(f*1000) / 1000 }
func round4(f float64) float64 { return math.Round(f*10000) / 10000 }

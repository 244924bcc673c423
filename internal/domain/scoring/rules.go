package scoring

import (
	"fmt"
	"sort"
	"strings"
)

type OutcomeKind string

const (
	KindImmunityWin OutcomeKind = "IMMUNITY_WIN"
	KindRewardWin   OutcomeKind = "REWARD_WIN"
	KindIdolFound   OutcomeKind = "IDOL_FOUND"
	KindIdolPlayed  OutcomeKind = "IDOL_PLAYED"
	KindVotedOut    OutcomeKind = "VOTED_OUT"
	KindFinalTribal OutcomeKind = "FINAL_TRIBAL"
	KindWinner      OutcomeKind = "WINNER"
)

// Kinds lists every outcome kind in display order.
func Kinds() []OutcomeKind {
	return []OutcomeKind{
		KindImmunityWin,
		KindRewardWin,
		KindIdolFound,
		KindIdolPlayed,
		KindVotedOut,
		KindFinalTribal,
		KindWinner,
	}
}

func (k OutcomeKind) Valid() bool {
	_, ok := defaultPoints[k]
	return ok
}

func ParseKind(v string) (OutcomeKind, error) {
	kind := OutcomeKind(strings.ToUpper(strings.TrimSpace(v)))
	if !kind.Valid() {
		return "", fmt.Errorf("unknown outcome kind %q", v)
	}
	return kind, nil
}

var defaultPoints = map[OutcomeKind]int{
	KindImmunityWin: 2,
	KindRewardWin:   1,
	KindIdolFound:   2,
	KindIdolPlayed:  3,
	KindVotedOut:    -2,
	KindFinalTribal: 5,
	KindWinner:      10,
}

// Rules maps every outcome kind to its point value.
type Rules map[OutcomeKind]int

// Override is a partial season-level replacement of the default points.
type Override map[OutcomeKind]int

func DefaultRules() Rules {
	out := make(Rules, len(defaultPoints))
	for k, v := range defaultPoints {
		out[k] = v
	}
	return out
}

// Resolve merges override over the defaults. Keys outside the closed kind set
// are ignored.
func Resolve(override Override) Rules {
	rules := DefaultRules()
	for k, v := range override {
		if k.Valid() {
			rules[k] = v
		}
	}
	return rules
}

// ScoreFor returns 0 for kinds the rules do not know.
func ScoreFor(kind OutcomeKind, rules Rules) int {
	return rules[kind]
}

// ParseOverride keeps recognised kinds from a raw config map and reports the
// ignored keys in sorted order.
func ParseOverride(raw map[string]int) (Override, []string) {
	if len(raw) == 0 {
		return nil, nil
	}

	out := make(Override, len(raw))
	var ignored []string
	for key, points := range raw {
		kind, err := ParseKind(key)
		if err != nil {
			ignored = append(ignored, key)
			continue
		}
		out[kind] = points
	}
	sort.Strings(ignored)
	return out, ignored
}

// Raw flattens an override for storage.
func (o Override) Raw() map[string]int {
	if len(o) == 0 {
		return nil
	}
	out := make(map[string]int, len(o))
	for k, v := range o {
		out[string(k)] = v
	}
	return out
}

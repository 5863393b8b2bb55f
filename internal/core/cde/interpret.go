package cde

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/dicetrace/internal/core/dice"
	apperrors "github.com/louisbranch/dicetrace/internal/platform/errors"
)

// Loksyu counts dominated-element dice by polarity.
type Loksyu struct {
	Yin  uint32
	Yang uint32
}

// Result is the distribution of one d10 pool under an element.
type Result struct {
	// Success counts dice of the rolling element.
	Success uint32
	// Lucky counts dice of the element generated by the rolling element.
	Lucky uint32
	// Ill counts dice of the element generating the rolling element.
	Ill uint32
	// Loksyu counts dice of the element dominated by the rolling element.
	Loksyu Loksyu
	// TinJi counts dice of the element dominating the rolling element.
	TinJi uint32

	// History is the interpreted roll, kept so the distribution can be checked.
	History dice.HistoryEntry
	// Order holds the rolling element then its relatives, see Element.Relatives.
	Order [5]Element
	// Elements holds the display label of each element in Order.
	Elements [5]string
}

// Equal compares the counters only; history and labels are ignored.
func (r Result) Equal(other Result) bool {
	return r.Success == other.Success &&
		r.Lucky == other.Lucky &&
		r.Ill == other.Ill &&
		r.Loksyu == other.Loksyu &&
		r.TinJi == other.TinJi
}

// Interpret reads a single d10 roll under the named element.
//
// The result must hold exactly one Roll entry: composite results and fudge
// rolls are rejected. element accepts English and French names.
func Interpret(res *dice.RollResult, element string) (Result, error) {
	if res == nil {
		return Result{}, apperrors.New(apperrors.CodeCdeNotSingleRoll, "Not a single roll result")
	}
	history := res.History()
	if len(history) != 1 {
		return Result{}, apperrors.WithMetadata(
			apperrors.CodeCdeNotSingleRoll,
			"Should have only one roll",
			map[string]string{"Entries": strconv.Itoa(len(history))},
		)
	}
	entry := history[0]
	if entry.Kind != dice.KindRoll {
		return Result{}, apperrors.WithMetadata(
			apperrors.CodeCdeNotRollVariant,
			"RollHistory must be a Roll variant",
			map[string]string{"Kind": entry.Kind.String()},
		)
	}

	e, err := ParseElement(element)
	if err != nil {
		return Result{}, err
	}

	result := Result{History: entry, Order: e.Relatives()}
	for i, rel := range result.Order {
		result.Elements[i] = rel.Label()
	}

	for _, face := range entry.Values {
		outcome, ok := Lookup(e, face)
		if !ok {
			return Result{}, apperrors.WithMetadata(
				apperrors.CodeCdeFaceOutOfRange,
				fmt.Sprintf("face %d is not on a d10", face),
				map[string]string{"Face": strconv.FormatUint(face, 10)},
			)
		}
		switch outcome {
		case Success:
			result.Success++
		case Lucky:
			result.Lucky++
		case Ill:
			result.Ill++
		case LoksyuYin:
			result.Loksyu.Yin++
		case LoksyuYang:
			result.Loksyu.Yang++
		case TinJi:
			result.TinJi++
		}
	}

	return result, nil
}

// Labels are the headings used when rendering a Result.
type Labels struct {
	Success string
	Lucky   string
	Ill     string
	Loksyu  string
	TinJi   string
	Yin     string
	Yang    string
	// Names overrides element names; missing entries use the English name.
	Names map[Element]string
}

// DefaultLabels returns the English headings.
func DefaultLabels() Labels {
	return Labels{
		Success: "Success",
		Lucky:   "Lucky dice",
		Ill:     "Ill dice",
		Loksyu:  "Loksyu",
		TinJi:   "Tin Ji",
		Yin:     "Yin",
		Yang:    "Yang",
	}
}

// LocalizedLabels builds headings from a message lookup keyed by
// "cde.success", "cde.element.fire" and so on. Missing keys keep the
// English default.
func LocalizedLabels(lookup func(key string) (string, bool)) Labels {
	labels := DefaultLabels()
	if lookup == nil {
		return labels
	}
	pick := func(key string, target *string) {
		if value, ok := lookup(key); ok && value != "" {
			*target = value
		}
	}
	pick("cde.success", &labels.Success)
	pick("cde.lucky", &labels.Lucky)
	pick("cde.ill", &labels.Ill)
	pick("cde.loksyu", &labels.Loksyu)
	pick("cde.tin_ji", &labels.TinJi)
	pick("cde.yin", &labels.Yin)
	pick("cde.yang", &labels.Yang)
	labels.Names = make(map[Element]string, elementCount)
	for _, e := range Elements {
		if value, ok := lookup("cde.element." + e.String()); ok && value != "" {
			labels.Names[e] = value
		}
	}
	return labels
}

// String renders the roll then one line per category with English headings.
func (r Result) String() string {
	return r.Render(DefaultLabels())
}

// Render renders the roll then one line per category.
func (r Result) Render(labels Labels) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.History)
	fmt.Fprintf(&b, "%s (%s): %d\n", labels.Success, r.elementLabel(0, labels), r.Success)
	fmt.Fprintf(&b, "%s (%s): %d\n", labels.Lucky, r.elementLabel(1, labels), r.Lucky)
	fmt.Fprintf(&b, "%s (%s): %d\n", labels.Ill, r.elementLabel(2, labels), r.Ill)
	fmt.Fprintf(&b, "%s (%s): %d ● %s / %d ○ %s\n", labels.Loksyu, r.elementLabel(3, labels), r.Loksyu.Yin, labels.Yin, r.Loksyu.Yang, labels.Yang)
	fmt.Fprintf(&b, "%s (%s): %d\n", labels.TinJi, r.elementLabel(4, labels), r.TinJi)
	return b.String()
}

func (r Result) elementLabel(i int, labels Labels) string {
	if name, ok := labels.Names[r.Order[i]]; ok {
		return r.Order[i].Glyph() + " " + name
	}
	return r.Elements[i]
}

package recommend

import (
	"fmt"
	"strings"

	"bracelet/internal/calendar"
)

// Candidate is a recommended material plus its selection context.
type Candidate struct {
	Name          string   `json:"name"`
	Element       string   `json:"element"`
	Colors        []string `json:"colors"`
	Effects       []string `json:"effects"`
	SuitableFor   []string `json:"suitableFor"`
	HasLuckyColor bool     `json:"hasLuckyColor"`
	Religious     bool     `json:"religious,omitempty"`
}

// Recommendation is the assembled bracelet guidance.
type Recommendation struct {
	Source           string      `json:"source"` // "basic", "enhanced" or "error"
	MissingElements  []string    `json:"missingElements,omitempty"`
	Materials        []Candidate `json:"materials,omitempty"`
	ReligiousSymbols []string    `json:"religiousSymbols,omitempty"`
	Text             string      `json:"recommendation"`
	Error            string      `json:"error,omitempty"`
}

// Enhanced wraps externally generated recommendation text as the result,
// replacing the table-driven selection.
func Enhanced(text string) Recommendation {
	return Recommendation{Source: "enhanced", Text: text}
}

// Recommend assembles the table-driven bracelet recommendation. It never
// fails the request: an internal fault degrades into an error-carrying
// recommendation.
func Recommend(elements []string, purpose, religion string, luckyColors []string) (rec Recommendation) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Sprintf("%v", r)
			rec = Recommendation{
				Source: "error",
				Error:  err,
				Text:   fmt.Sprintf("手串推荐生成出错：%s", err),
			}
		}
	}()

	missing := missingElements(elements, purpose)
	candidates := selectMaterials(missing, religion, luckyColors)
	symbols := religiousSymbols[religion]

	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	if len(symbols) > 3 {
		symbols = symbols[:3]
	}

	return Recommendation{
		Source:           "basic",
		MissingElements:  missing,
		Materials:        candidates,
		ReligiousSymbols: symbols,
		Text:             buildText(candidates, symbols, purpose, religion),
	}
}

// missingElements returns the elements absent from the wearer's profile in
// canonical order, falling back to the purpose-specific pair when the
// profile covers all five.
func missingElements(elements []string, purpose string) []string {
	have := make(map[string]bool, len(elements))
	for _, e := range elements {
		have[e] = true
	}
	missing := make([]string, 0, 5)
	for _, e := range calendar.AllElements {
		if !have[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) > 0 {
		return missing
	}
	if pair, ok := purposeElements[purpose]; ok {
		return pair
	}
	return defaultPurposeElements
}

// selectMaterials picks element matches in table order, then appends the
// religion's materials that were not already chosen.
func selectMaterials(missing []string, religion string, luckyColors []string) []Candidate {
	wanted := make(map[string]bool, len(missing))
	for _, e := range missing {
		wanted[e] = true
	}

	var out []Candidate
	picked := make(map[string]bool)
	for _, m := range materials {
		if wanted[m.Element] {
			out = append(out, newCandidate(m, luckyColors, false))
			picked[m.Name] = true
		}
	}
	for _, name := range religiousMaterials[religion] {
		m, ok := materialsByName[name]
		if !ok || picked[name] {
			continue
		}
		out = append(out, newCandidate(m, luckyColors, true))
		picked[name] = true
	}
	return out
}

func newCandidate(m Material, luckyColors []string, religious bool) Candidate {
	return Candidate{
		Name:          m.Name,
		Element:       m.Element,
		Colors:        m.Colors,
		Effects:       m.Effects,
		SuitableFor:   m.SuitableFor,
		HasLuckyColor: hasAnyColor(m.Colors, luckyColors),
		Religious:     religious,
	}
}

func hasAnyColor(colors, lucky []string) bool {
	for _, c := range colors {
		for _, l := range lucky {
			if c == l {
				return true
			}
		}
	}
	return false
}

func buildText(candidates []Candidate, symbols []string, purpose, religion string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "根据您的五行属性和%s需求，推荐以下手串材质组合：\n\n", purpose)
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. %s（%s属性）\n", i+1, c.Name, c.Element)
		fmt.Fprintf(&b, "   颜色：%s\n", strings.Join(c.Colors, ", "))
		fmt.Fprintf(&b, "   功效：%s\n", strings.Join(c.Effects, ", "))
		fmt.Fprintf(&b, "   适合：%s\n\n", strings.Join(c.SuitableFor, ", "))
	}
	if len(symbols) > 0 {
		fmt.Fprintf(&b, "根据您的%s信仰，建议在手串上添加以下吉祥物或符号：\n", religion)
		fmt.Fprintf(&b, "%s\n\n", strings.Join(symbols, ", "))
	}
	b.WriteString("佩戴建议：\n")
	for _, line := range wearingGuidance {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/panmitra/form49a-service/dto"
)

var (
	rePAN    = regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`)
	rePANDOB = regexp.MustCompile(`(0[1-9]|[12][0-9]|3[01])[/-](0[1-9]|1[0-2])[/-][0-9]{4}`)
)

// ParsePANText pulls the PAN, holder name and DOB out of the raw OCR text of
// a PAN card.
func ParsePANText(raw string) dto.ProofExtract {
	t := strings.ToUpper(raw)

	name := extractPANHolderName(panCardLines(t))

	return dto.ProofExtract{
		PAN:    rePAN.FindString(t),
		Name:   name,
		DOB:    rePANDOB.FindString(t),
		Source: "ocr",
	}
}

func panCardLines(t string) []string {
	lines := strings.Split(t, "\n")
	out := []string{}

	for _, l := range lines {
		l = strings.TrimSpace(l)
		if len(l) < 3 {
			continue
		}
		if strings.Contains(l, "INCOME") ||
			strings.Contains(l, "GOVT") ||
			strings.Contains(l, "TAX") ||
			strings.Contains(l, "DEPARTMENT") {
			continue
		}
		out = append(out, l)
	}
	return out
}

func extractPANHolderName(lines []string) string {
	// Label-based detection first: the value follows the label line.
	for i, l := range lines {
		if strings.Contains(l, "NAME") && !strings.Contains(l, "FATHER") && i+1 < len(lines) {
			candidate := strings.TrimSpace(lines[i+1])
			if digitFree(candidate) {
				return candidate
			}
		}
	}

	// Fallback: first digit-free line.
	for _, l := range lines {
		if digitFree(l) && !strings.Contains(l, "FATHER") && len(strings.Fields(l)) >= 1 {
			return l
		}
	}
	return ""
}

func digitFree(s string) bool {
	for _, c := range s {
		if unicode.IsDigit(c) {
			return false
		}
	}
	return true
}

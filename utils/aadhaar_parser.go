package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/panmitra/form49a-service/dto"
)

var (
	reDOBLabelled = regexp.MustCompile(`(?i)dob\s*[:\-]?\s*([0-9]{2}[/-][0-9]{2}[/-][0-9]{4})`)
	reDateAny     = regexp.MustCompile(`\b([0-9]{2}[/-][0-9]{2}[/-][0-9]{4})\b`)
	reAadhaar12   = regexp.MustCompile(`\b(\d{4})\s+(\d{4})\s+(\d{4})\b`)
	reNonAlpha    = regexp.MustCompile(`[^A-Za-z\s]+`)
	reSpaces      = regexp.MustCompile(`\s+`)
)

// ParseAadhaarText pulls name, DOB, gender and the Aadhaar last-4 out of the
// raw OCR text of a UIDAI letter or card. Tuned for the usual letter layout:
// the holder's name sits on the line above the DOB line.
func ParseAadhaarText(text string) dto.ProofExtract {
	lines := normalizeLines(text)

	dob, dobIdx := findDOB(lines)
	return dto.ProofExtract{
		Name:         findNameNearDOB(lines, dobIdx),
		DOB:          dob,
		Gender:       findGenderNearDOB(lines, dobIdx),
		AadhaarLast4: findAadhaarLast4(text),
		Source:       "ocr",
	}
}

func normalizeLines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	rawLines := strings.Split(text, "\n")

	lines := make([]string, 0, len(rawLines))
	for _, l := range rawLines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

func findDOB(lines []string) (string, int) {
	for i, line := range lines {
		if m := reDOBLabelled.FindStringSubmatch(line); len(m) > 1 {
			return m[1], i
		}
	}
	// Fallback: any DD/MM/YYYY
	for i, line := range lines {
		if m := reDateAny.FindStringSubmatch(line); len(m) > 1 {
			return m[1], i
		}
	}
	return "", -1
}

// findNameNearDOB walks up to 3 lines above the DOB line looking for a
// plausible person name.
func findNameNearDOB(lines []string, dobIdx int) string {
	if dobIdx <= 0 || dobIdx >= len(lines) {
		return ""
	}

	for i := dobIdx - 1; i >= 0 && dobIdx-i <= 3; i-- {
		name := cleanNameLine(lines[i])
		if isLikelyPersonName(name) {
			return name
		}
	}

	// Widen the window as a last resort.
	start := dobIdx - 5
	if start < 0 {
		start = 0
	}
	end := dobIdx + 5
	if end > len(lines) {
		end = len(lines)
	}
	for i := start; i < end; i++ {
		name := cleanNameLine(lines[i])
		if isLikelyPersonName(name) {
			return name
		}
	}
	return ""
}

// cleanNameLine strips OCR noise and keeps the first few alphabetic words,
// title-cased.
func cleanNameLine(line string) string {
	line = reNonAlpha.ReplaceAllString(line, " ")
	line = reSpaces.ReplaceAllString(strings.TrimSpace(line), " ")
	if line == "" {
		return ""
	}

	parts := strings.Fields(line)
	if len(parts) > 3 {
		parts = parts[:3]
	}
	for i, p := range parts {
		lower := strings.ToLower(p)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}

// isLikelyPersonName rejects lines like "Government of India" or
// "Unique Identification Authority".
func isLikelyPersonName(name string) bool {
	if name == "" {
		return false
	}

	words := strings.Fields(name)
	if len(words) < 2 || len(words) > 4 {
		return false
	}

	lower := strings.ToLower(name)
	badTokens := []string{
		"government", "india", "authority", "unique",
		"identification", "aadhaar", "address", "pin", "code",
	}
	for _, t := range badTokens {
		if strings.Contains(lower, t) {
			return false
		}
	}

	letterCount := 0
	for _, r := range name {
		if unicode.IsLetter(r) {
			letterCount++
		}
	}
	if letterCount < 4 {
		return false
	}

	for _, w := range words {
		if len(w) < 2 {
			return false
		}
	}
	return true
}

func findGenderNearDOB(lines []string, dobIdx int) string {
	start := 0
	if dobIdx > 2 {
		start = dobIdx - 2
	}
	end := dobIdx + 5
	if end > len(lines) {
		end = len(lines)
	}

	for i := start; i < end; i++ {
		lower := strings.ToLower(lines[i])
		// "female" contains "male", so check it first
		if strings.Contains(lower, "female") || strings.Contains(lower, "महिला") {
			return "Female"
		}
		if strings.Contains(lower, "male") || strings.Contains(lower, "पुरुष") {
			return "Male"
		}
	}
	return ""
}

func findAadhaarLast4(text string) string {
	if m := reAadhaar12.FindStringSubmatch(text); len(m) == 4 {
		return m[3]
	}
	return ""
}

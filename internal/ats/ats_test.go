package ats

import (
	"strings"
	"testing"

	"github.com/jonathan/resumesense/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanResume = `Jane Doe
Email: jane.doe@example.com | Phone: (555) 123-4567
Professional Summary
Software engineer.
EXPERIENCE
- Built services
EDUCATION
B.S. Computer Science, State University
SKILLS
- Go, Python`

func TestCheckCompliance_CleanResume(t *testing.T) {
	report := CheckCompliance(cleanResume)
	require.NotNil(t, report)

	assert.Equal(t, types.SectionChecks{Education: true, Experience: true, Skills: true, Contact: true, Summary: true}, report.SectionChecks)
	assert.True(t, report.ContactCheck.Complete)
	assert.False(t, report.FormattingChecks.HasTables)
	assert.False(t, report.FormattingChecks.ExcessiveFormatting)
	assert.False(t, report.FormattingChecks.HasHeadersFooters)
	assert.True(t, report.FormattingChecks.HasBullets)
	assert.Equal(t, 100.0, report.ATSScore)
	assert.Empty(t, report.Issues)
	assert.Equal(t, []string{
		"Use standard fonts (Arial, Times New Roman, Calibri)",
		"Save as PDF to preserve formatting",
		"Use keywords from the job description naturally throughout your resume",
	}, report.Recommendations)
}

func TestCheckCompliance_BareText(t *testing.T) {
	report := CheckCompliance("hello world")

	assert.Equal(t, 25.0, report.ATSScore)
	assert.Equal(t, []string{
		"Missing Education section",
		"Missing Experience section",
		"Missing Skills section",
		"Missing Contact section",
		"Missing Summary section",
		"Missing email address",
		"Missing phone number",
		"No bullet points found (bullets improve ATS readability)",
	}, report.Issues)
	assert.Len(t, report.Recommendations, 9)
	assert.Equal(t, "Add an Education section with your academic background", report.Recommendations[0])
}

func TestCheckCompliance_Empty(t *testing.T) {
	report := CheckCompliance("")
	assert.Equal(t, 25.0, report.ATSScore)
	assert.False(t, report.FormattingChecks.ExcessiveFormatting)
}

func TestCheckSections_Headers(t *testing.T) {
	sections := CheckSections("EDUCATION\nBSc\nEXPERIENCE\nEngineer\nSKILLS\nGo")
	assert.True(t, sections.Education)
	assert.True(t, sections.Experience)
	assert.True(t, sections.Skills)
	assert.Equal(t, 3, sections.Present())
}

func TestCheckContact(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantEmail bool
		wantPhone bool
		wantAddr  bool
	}{
		{"email and dashed phone", "Email: a@b.com Phone: 555-123-4567", true, true, false},
		{"parenthesized phone", "Call (555) 987-6543", false, true, false},
		{"international phone", "Tel +44 20 7946 0958", false, true, false},
		{"dotted phone", "555.123.4567", false, true, false},
		{"address only", "221 Baker Street, London", false, false, true},
		{"short number", "Room 12", false, false, false},
		{"accented local part", "Courriel: éa@b.com", true, false, false},
		{"arabic-indic digits", "هاتف ٥٥٥-١٢٣-٤٥٦٧", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CheckContact(tt.text)
			assert.Equal(t, tt.wantEmail, c.HasEmail)
			assert.Equal(t, tt.wantPhone, c.HasPhone)
			assert.Equal(t, tt.wantAddr, c.HasAddress)
			assert.Equal(t, tt.wantEmail && tt.wantPhone, c.Complete)
		})
	}
}

func TestCheckFormatting_Tables(t *testing.T) {
	assert.True(t, CheckFormatting("Skills\tGo").HasTables)
	assert.True(t, CheckFormatting("Go   Python").HasTables)
	assert.False(t, CheckFormatting("Go  Python").HasTables)
}

func TestCheckFormatting_Bullets(t *testing.T) {
	assert.True(t, CheckFormatting("• Led a team").HasBullets)
	assert.True(t, CheckFormatting("* Led a team").HasBullets)
	assert.True(t, CheckFormatting("‣ Led a team").HasBullets)
	assert.False(t, CheckFormatting("Led a team").HasBullets)
	assert.False(t, CheckFormatting("well-known").HasBullets)
}

func TestCheckFormatting_HeadersFooters(t *testing.T) {
	body := []string{"one", "two", "three", "four", "five", "six", "seven", "eight"}

	repeated := append(append([]string{"ACME Resume", "Jane Doe", "Page"}, body...), "x", "y", "  ACME Resume  ")
	assert.True(t, CheckFormatting(strings.Join(repeated, "\n")).HasHeadersFooters)

	distinct := append(append([]string{"Jane Doe", "Engineer", "Contact"}, body...), "x", "y", "z")
	assert.False(t, CheckFormatting(strings.Join(distinct, "\n")).HasHeadersFooters)

	blankEnds := append(append([]string{"", "Jane", "Doe"}, body...), "x", "y", "")
	assert.False(t, CheckFormatting(strings.Join(blankEnds, "\n")).HasHeadersFooters, "blank lines do not count")

	short := "ACME\nbody\nACME"
	assert.False(t, CheckFormatting(short).HasHeadersFooters)
}

func TestSpecialCharRatio(t *testing.T) {
	assert.Equal(t, 0.0, SpecialCharRatio(""))
	assert.Equal(t, 1.0, SpecialCharRatio("!!!"))
	assert.Equal(t, 0.5, SpecialCharRatio("a!"))
	assert.Equal(t, 0.0, SpecialCharRatio("naïve café 2024"))
	assert.True(t, CheckFormatting("#$%& ab").ExcessiveFormatting)
}

func TestScore_ContactTiers(t *testing.T) {
	var sections types.SectionChecks
	formatting := types.FormattingChecks{HasBullets: true}

	assert.Equal(t, 30.0, Score(sections, types.ContactCheck{}, formatting))
	assert.Equal(t, 45.0, Score(sections, types.ContactCheck{HasEmail: true}, formatting))
	assert.Equal(t, 45.0, Score(sections, types.ContactCheck{HasPhone: true}, formatting))
	assert.Equal(t, 60.0, Score(sections, types.ContactCheck{HasEmail: true, HasPhone: true, Complete: true}, formatting))
}

func TestScore_SectionsRounded(t *testing.T) {
	sections := types.SectionChecks{Education: true, Skills: true}
	// 2/5*40 + 0 + 30
	assert.Equal(t, 46.0, Score(sections, types.ContactCheck{}, types.FormattingChecks{HasBullets: true}))
}

func TestScore_MonotonicInFormattingRisk(t *testing.T) {
	sections := types.SectionChecks{Education: true, Experience: true}
	contact := types.ContactCheck{HasEmail: true}

	flags := func(mask int) types.FormattingChecks {
		return types.FormattingChecks{
			HasTables:           mask&1 != 0,
			ExcessiveFormatting: mask&2 != 0,
			HasHeadersFooters:   mask&4 != 0,
			HasBullets:          mask&8 == 0,
		}
	}

	for mask := 0; mask < 16; mask++ {
		base := Score(sections, contact, flags(mask))
		assert.GreaterOrEqual(t, base, 0.0)
		assert.LessOrEqual(t, base, 100.0)
		for bit := 1; bit < 16; bit <<= 1 {
			if mask&bit != 0 {
				continue
			}
			assert.LessOrEqual(t, Score(sections, contact, flags(mask|bit)), base)
		}
	}

	worst := Score(types.SectionChecks{}, types.ContactCheck{}, flags(15))
	assert.Equal(t, 0.0, worst)
}

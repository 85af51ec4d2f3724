// Package ats checks resumes for applicant tracking system compliance:
// section presence, contact details and formatting that parsers struggle with.
package ats

import (
	"math"
	"strings"

	"github.com/jonathan/resumesense/internal/types"
)

// Score weights.
const (
	sectionPoints    = 40.0
	contactPoints    = 30.0
	partialContact   = 15.0
	formattingPoints = 30.0

	tablePenalty        = 10.0
	specialCharPenalty  = 10.0
	headerFooterPenalty = 5.0
	noBulletPenalty     = 5.0
)

// CheckCompliance runs every check against the resume text and scores it.
func CheckCompliance(resumeText string) *types.ATSReport {
	sections := CheckSections(resumeText)
	contact := CheckContact(resumeText)
	formatting := CheckFormatting(resumeText)

	return &types.ATSReport{
		ATSScore:         Score(sections, contact, formatting),
		SectionChecks:    sections,
		ContactCheck:     contact,
		FormattingChecks: formatting,
		Issues:           Issues(sections, contact, formatting),
		Recommendations:  Recommendations(sections, contact, formatting),
	}
}

// Score computes the 0-100 compliance score: 40 points for sections, 30 for
// contact details and 30 for formatting less penalties.
func Score(sections types.SectionChecks, contact types.ContactCheck, formatting types.FormattingChecks) float64 {
	score := float64(sections.Present()) / types.SectionCount * sectionPoints

	switch {
	case contact.Complete:
		score += contactPoints
	case contact.HasEmail || contact.HasPhone:
		score += partialContact
	}

	fmtScore := formattingPoints
	if formatting.HasTables {
		fmtScore -= tablePenalty
	}
	if formatting.ExcessiveFormatting {
		fmtScore -= specialCharPenalty
	}
	if formatting.HasHeadersFooters {
		fmtScore -= headerFooterPenalty
	}
	if !formatting.HasBullets {
		fmtScore -= noBulletPenalty
	}
	score += math.Max(0, fmtScore)

	score = math.Min(100.0, math.Max(0.0, score))
	return math.Round(score*100) / 100
}

// Issues lists one message per failed check.
func Issues(sections types.SectionChecks, contact types.ContactCheck, formatting types.FormattingChecks) []string {
	issues := []string{}

	for _, s := range sectionList(sections) {
		if !s.present {
			issues = append(issues, "Missing "+s.title+" section")
		}
	}

	if !contact.HasEmail {
		issues = append(issues, "Missing email address")
	}
	if !contact.HasPhone {
		issues = append(issues, "Missing phone number")
	}

	if formatting.HasTables {
		issues = append(issues, "Contains table-like formatting (may not parse well in ATS)")
	}
	if formatting.ExcessiveFormatting {
		issues = append(issues, "Excessive special characters (may indicate complex formatting)")
	}
	if formatting.HasHeadersFooters {
		issues = append(issues, "Contains headers/footers (may confuse ATS parsing)")
	}
	if !formatting.HasBullets {
		issues = append(issues, "No bullet points found (bullets improve ATS readability)")
	}

	return issues
}

// Recommendations lists fixes for failed checks followed by three general
// style recommendations that are always present.
func Recommendations(sections types.SectionChecks, contact types.ContactCheck, formatting types.FormattingChecks) []string {
	recs := []string{}

	if !sections.Education {
		recs = append(recs, "Add an Education section with your academic background")
	}
	if !sections.Experience {
		recs = append(recs, "Add an Experience section detailing your work history")
	}
	if !sections.Skills {
		recs = append(recs, "Add a Skills section listing your technical and soft skills")
	}

	if !contact.HasEmail {
		recs = append(recs, "Include a professional email address")
	}
	if !contact.HasPhone {
		recs = append(recs, "Include a phone number")
	}

	if formatting.HasTables {
		recs = append(recs, "Avoid using tables; use simple text formatting instead")
	}
	if !formatting.HasBullets {
		recs = append(recs, "Use bullet points to improve readability and ATS parsing")
	}

	return append(recs,
		"Use standard fonts (Arial, Times New Roman, Calibri)",
		"Save as PDF to preserve formatting",
		"Use keywords from the job description naturally throughout your resume",
	)
}

type sectionFlag struct {
	title   string
	present bool
}

func sectionList(s types.SectionChecks) []sectionFlag {
	return []sectionFlag{
		{"Education", s.Education},
		{"Experience", s.Experience},
		{"Skills", s.Skills},
		{"Contact", s.Contact},
		{"Summary", s.Summary},
	}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

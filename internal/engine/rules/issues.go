// Package rules resolves a character snapshot against reference data into derived build state:
// skills by provenance, layered ability modifiers, ASI progression, feat validation and hit points.
//
// Every function here is pure. Policy rejections, validation failures and bad reference data are
// returned as values, never as errors or panics, so callers can run them inside a render loop.
package rules

import (
	"fmt"

	"github.com/KirkDiggler/grimoire-api/internal/reference"
)

// Severity grades an Issue
type Severity string

// Severity values
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IssueCode classifies an Issue
type IssueCode string

// Issue codes
const (
	IssueDuplicateFeat        IssueCode = "duplicate_feat"
	IssueUnmetPrerequisite    IssueCode = "unmet_prerequisite"
	IssueUnknownReference     IssueCode = "unknown_reference"
	IssueIncomplete           IssueCode = "incomplete"
	IssuePendingMilestone     IssueCode = "pending_milestone"
	IssueInactiveMilestone    IssueCode = "inactive_milestone"
	IssueInvalidChoice        IssueCode = "invalid_choice"
	IssueInvalidASI           IssueCode = "invalid_asi"
	IssueCastingSkillCap      IssueCode = "casting_skill_cap"
	IssueExpertiseUnavailable IssueCode = "expertise_unavailable"
)

// Issue is a single finding about a character build
type Issue struct {
	Severity   Severity  `json:"severity"`
	Code       IssueCode `json:"code"`
	Message    string    `json:"message"`
	Subject    string    `json:"subject,omitempty"`
	Level      int       `json:"level,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}

func warning(code IssueCode, subject, format string, args ...interface{}) Issue {
	return Issue{
		Severity: SeverityWarning,
		Code:     code,
		Subject:  subject,
		Message:  fmt.Sprintf(format, args...),
	}
}

func unknownReference(ref *reference.Data, kind reference.Kind, name string) Issue {
	issue := warning(IssueUnknownReference, name, "unknown %s %q", kindLabel(kind), name)
	if s := ref.Suggest(kind, name); s != "" && s != name {
		issue.Suggestion = s
		issue.Message = fmt.Sprintf("%s (did you mean %q?)", issue.Message, s)
	}
	return issue
}

func kindLabel(kind reference.Kind) string {
	switch kind {
	case reference.KindCastingStyle:
		return "casting style"
	case reference.KindFeat:
		return "feat"
	case reference.KindBackground:
		return "background"
	case reference.KindHeritage:
		return "innate heritage"
	case reference.KindHouse:
		return "house"
	case reference.KindSubclass:
		return "subclass"
	case reference.KindSkill:
		return "skill"
	default:
		return string(kind)
	}
}

// mergeIssues appends src to dst, skipping issues already present
func mergeIssues(dst []Issue, src ...Issue) []Issue {
	for _, issue := range src {
		dup := false
		for _, existing := range dst {
			if existing == issue {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, issue)
		}
	}
	return dst
}

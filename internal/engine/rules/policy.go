package rules

import (
	"sort"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
)

// RejectReason explains why an edit was refused
type RejectReason string

// Reject reasons
const (
	RejectNone               RejectReason = ""
	RejectNotAvailable       RejectReason = "not_available"
	RejectAutomaticSkill     RejectReason = "automatic_skill"
	RejectCapReached         RejectReason = "cap_reached"
	RejectNoExpertiseGranter RejectReason = "no_expertise_granter"
	RejectNotProficient      RejectReason = "not_proficient"
	RejectAlreadyExpertise   RejectReason = "already_expertise"
	RejectLevel1Locked       RejectReason = "level1_locked"
	RejectNotMilestone       RejectReason = "not_a_milestone"
	RejectInvalidLevel       RejectReason = "invalid_level"
	RejectInvalidChoice      RejectReason = "invalid_choice"
)

// EditResult is the outcome of an edit operation.
// Character is always a fresh copy; on rejection it equals the input snapshot.
type EditResult struct {
	Character *entities.Character
	Applied   bool
	Reason    RejectReason
}

func applied(c *entities.Character) EditResult {
	return EditResult{Character: c, Applied: true}
}

func rejected(c *entities.Character, reason RejectReason) EditResult {
	return EditResult{Character: cloneOrNew(c), Reason: reason}
}

// stringSet is an insertion-ordered set
type stringSet struct {
	order []string
	index map[string]struct{}
}

func newStringSet(items ...string) *stringSet {
	s := &stringSet{index: make(map[string]struct{})}
	s.add(items...)
	return s
}

func (s *stringSet) add(items ...string) {
	for _, item := range items {
		if item == "" {
			continue
		}
		if _, ok := s.index[item]; ok {
			continue
		}
		s.index[item] = struct{}{}
		s.order = append(s.order, item)
	}
}

func (s *stringSet) has(item string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[item]
	return ok
}

func (s *stringSet) len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// list returns the members in insertion order, never nil
func (s *stringSet) list() []string {
	if s == nil {
		return []string{}
	}
	return append([]string{}, s.order...)
}

// sorted returns the members alphabetically, never nil
func (s *stringSet) sorted() []string {
	out := s.list()
	sort.Strings(out)
	return out
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

func without(list []string, item string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != item {
			out = append(out, v)
		}
	}
	return out
}

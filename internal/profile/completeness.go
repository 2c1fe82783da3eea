package profile

import "strings"

// The completeness predicates gate which AI report actions are available and
// which report branch (short vs. comprehensive) is selected.

// RiasecComplete reports whether the interest screening has been run.
func (d Document) RiasecComplete() bool {
	return d.Riasec.LastRun != nil && len(d.Riasec.Scores) > 0
}

// BigFiveComplete reports whether the personality screening has been run.
func (d Document) BigFiveComplete() bool {
	return d.BigFive.LastRun != nil && len(d.BigFive.Scores) > 0
}

// MotivationComplete reports whether the motivation screening has been run.
func (d Document) MotivationComplete() bool {
	return d.Motivation.LastRun != nil && len(d.Motivation.Scores) > 0
}

// FutureSkillsComplete reports whether the future-skills screening has been run.
func (d Document) FutureSkillsComplete() bool {
	return d.FutureSkills.LastRun != nil && len(d.FutureSkills.Scores) > 0
}

// AllScreeningsComplete is the AND over all four identity screenings.
func (d Document) AllScreeningsComplete() bool {
	return d.RiasecComplete() &&
		d.BigFiveComplete() &&
		d.MotivationComplete() &&
		d.FutureSkillsComplete()
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// identityFields lists the manually entered identity texts.
func (d Document) identityFields() []string {
	return []string{
		d.Identity.Staerken,
		d.Identity.Schwaechen,
		d.Identity.Werte,
		d.Identity.Interessen,
		d.Identity.Ziele,
	}
}

// personalFields lists the general free-text profile fields.
func (d Document) personalFields() []string {
	return []string{
		d.Personal.Beruf,
		d.Personal.Berufserfahrung,
		d.Personal.Ausbildung,
		d.Personal.Hobbys,
		d.Personal.Lebensmotto,
	}
}

// IdentityProfileEmpty reports whether every relevant identity text is blank.
func (d Document) IdentityProfileEmpty() bool {
	for _, f := range d.identityFields() {
		if !blank(f) {
			return false
		}
	}
	return true
}

// SufficientForAiStyling reports whether enough data exists for the AI Valou
// styling actions: any screening scores present, OR any identity text, OR
// any general profile text.
func (d Document) SufficientForAiStyling() bool {
	if len(d.Riasec.Scores) > 0 ||
		len(d.BigFive.Scores) > 0 ||
		len(d.Motivation.Scores) > 0 ||
		len(d.FutureSkills.Scores) > 0 {
		return true
	}
	for _, f := range d.identityFields() {
		if !blank(f) {
			return true
		}
	}
	for _, f := range d.personalFields() {
		if !blank(f) {
			return true
		}
	}
	return false
}

// Empty reports whether a Valou area carries no user data at all.
func (a ValouArea) Empty() bool {
	return a.StylingSatz == "" &&
		len(a.Vorlieben) == 0 &&
		len(a.Abneigungen) == 0 &&
		len(a.MustHaves) == 0 &&
		len(a.NoGos) == 0
}

// ValouEffectivelyEmpty reports whether every area is completely empty.
func (d Document) ValouEffectivelyEmpty() bool {
	for _, a := range d.Valou {
		if !a.Empty() {
			return false
		}
	}
	return true
}

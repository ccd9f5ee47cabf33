// Package shortname derives unique four-character team tags for broadcast
// overlays.
//
// Every team name is first reduced to a base tag (the first four letters of
// its first word). When several teams collapse to the same base tag, the
// resolver escalates through a fixed sequence of strategies until every team
// in the colliding group holds a tag no other team uses:
//
//  1. Three characters from the first word plus one from the second,
//     attempted for the whole group at once.
//  2. Two characters from the first word plus two from the second, also
//     all-or-nothing for the group.
//  3. Per-team fallback: retry the two formulas individually, then append a
//     disambiguating character taken from the second word, the third word,
//     and finally a generated sequence of digits and letters.
//
// Resolution is deterministic: groups are processed in the order their base
// tag was first encountered in the input, and members within a group keep
// their input order. The used-tag set is threaded through group processing as
// an explicit accumulator, so two runs over the same input always produce the
// same mapping.
package shortname

import "strings"

// FallbackTag is assigned to names that contain no alphanumeric characters.
const FallbackTag = "XXXX"

// generatedChars is the last-resort disambiguation sequence: digits first,
// then the alphabet.
const generatedChars = "123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Words splits a team name into maximal runs of ASCII letters and digits.
// Everything else acts as a separator and is discarded.
//
//	Words("Team-Alpha 7") → ["Team", "Alpha", "7"]
func Words(name string) []string {
	var words []string
	start := -1
	for i := 0; i < len(name); i++ {
		if isAlnum(name[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, name[start:i])
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, name[start:])
	}
	return words
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// DeriveBaseTag computes the initial abbreviation for a team name: the first
// four characters of the first word, uppercased. Shorter first words are used
// whole, and names without any alphanumeric characters map to [FallbackTag].
func DeriveBaseTag(name string) string {
	words := Words(name)
	if len(words) == 0 {
		return FallbackTag
	}
	return strings.ToUpper(prefix(words[0], 4))
}

// prefix returns at most the first n bytes of s.
func prefix(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// tag builds a candidate by concatenating parts, uppercasing, and clamping to
// four characters.
func tag(parts ...string) string {
	return prefix(strings.ToUpper(strings.Join(parts, "")), 4)
}

// group is a set of team names whose base tags collide, in collection order:
// the first owner of the tag followed by every later collider.
type group struct {
	baseTag string
	teams   []string
}

// ResolveConflicts assigns a globally unique tag to every distinct team name
// in names. Teams whose base tag collides with nobody keep it unchanged;
// colliding groups are resolved through the strategy escalation described in
// the package documentation.
//
// The function is total: it never fails, and in the pathological worst case
// (dozens of teams sharing the same three-letter prefix and exhausting the
// generated-character sequence) it can emit a duplicate tag. Callers that
// care should verify uniqueness of the returned values and warn.
func ResolveConflicts(teamNames []string) map[string]string {
	// Pass 1: claim base tags in input order and collect colliders.
	firstOwner := make(map[string]string)
	var tagOrder []string
	collisions := make(map[string][]string)

	for _, name := range teamNames {
		base := DeriveBaseTag(name)
		if _, claimed := firstOwner[base]; claimed {
			collisions[base] = append(collisions[base], name)
			continue
		}
		firstOwner[base] = name
		tagOrder = append(tagOrder, base)
	}

	// Pass 2: partition into non-conflicting assignments and conflict groups,
	// keeping the order base tags were first seen.
	resolved := make(map[string]string, len(firstOwner))
	var groups []group

	for _, base := range tagOrder {
		colliders, conflicted := collisions[base]
		if !conflicted {
			resolved[firstOwner[base]] = base
			continue
		}
		g := group{baseTag: base}
		seen := make(map[string]bool)
		for _, name := range append([]string{firstOwner[base]}, colliders...) {
			if seen[name] {
				continue
			}
			seen[name] = true
			g.teams = append(g.teams, name)
		}
		groups = append(groups, g)
	}

	// used accumulates every tag handed out so far, across groups.
	used := make(map[string]bool, len(resolved))
	for _, t := range resolved {
		used[t] = true
	}

	for _, g := range groups {
		for name, t := range resolveGroup(g, used) {
			resolved[name] = t
			used[t] = true
		}
	}
	return resolved
}

// resolveGroup assigns tags to every team in g, avoiding everything in used.
// It tries the two group-wide strategies first and falls back to per-team
// resolution when neither covers the whole group with distinct tags.
func resolveGroup(g group, used map[string]bool) map[string]string {
	if r := tryGroupStrategy(g, used, threePlusOne); r != nil {
		return r
	}
	if r := tryGroupStrategy(g, used, twoPlusTwo); r != nil {
		return r
	}
	return resolveIndividually(g, used)
}

// threePlusOne is strategy 1: three characters from the first word and the
// first character of the second. It yields nothing for single-word names.
func threePlusOne(words []string) (string, bool) {
	if len(words) < 2 || len(words[1]) == 0 {
		return "", false
	}
	return tag(prefix(words[0], 3), words[1][:1]), true
}

// twoPlusTwo is strategy 2: two characters from each of the first two words.
// The second word must be at least two characters long.
func twoPlusTwo(words []string) (string, bool) {
	if len(words) < 2 || len(words[1]) < 2 {
		return "", false
	}
	return tag(prefix(words[0], 2), prefix(words[1], 2)), true
}

// tryGroupStrategy applies one candidate formula to every team in the group.
// The batch is accepted only when it covers every team, avoids the global
// used set, and contains no internal duplicates; otherwise nil is returned
// and the caller escalates.
func tryGroupStrategy(g group, used map[string]bool, formula func([]string) (string, bool)) map[string]string {
	results := make(map[string]string, len(g.teams))
	values := make(map[string]bool, len(g.teams))
	for _, team := range g.teams {
		candidate, ok := formula(Words(team))
		if !ok || used[candidate] {
			return nil
		}
		results[team] = candidate
		values[candidate] = true
	}
	if len(values) != len(g.teams) {
		return nil
	}
	return results
}

// resolveIndividually walks the group in collection order and finds a tag for
// each team on its own: the two formulas first, then the base prefix plus a
// disambiguating character.
func resolveIndividually(g group, used map[string]bool) map[string]string {
	results := make(map[string]string, len(g.teams))
	taken := func(t string) bool {
		if used[t] {
			return true
		}
		for _, v := range results {
			if v == t {
				return true
			}
		}
		return false
	}

	for _, team := range g.teams {
		words := Words(team)

		if candidate, ok := threePlusOne(words); ok && !taken(candidate) {
			results[team] = candidate
			continue
		}
		if candidate, ok := twoPlusTwo(words); ok && !taken(candidate) {
			results[team] = candidate
			continue
		}

		var first string
		if len(words) > 0 {
			first = prefix(words[0], 3)
		}
		if candidate, ok := disambiguate(first, words, taken); ok {
			results[team] = candidate
			continue
		}
		// Should be unreachable: the generated sequence spans the whole
		// alphanumeric space. Kept as a non-failing last resort, at the cost
		// of a possible duplicate.
		results[team] = tag(first, "X")
	}
	return results
}

// disambiguate searches for a fourth character that makes first+char unique,
// trying the second word's characters, then the third word's, then the
// generated digit/letter sequence.
func disambiguate(first string, words []string, taken func(string) bool) (string, bool) {
	var sources []string
	if len(words) >= 2 {
		sources = append(sources, words[1])
	}
	if len(words) >= 3 {
		sources = append(sources, words[2])
	}
	sources = append(sources, generatedChars)

	for _, source := range sources {
		for i := 0; i < len(source); i++ {
			candidate := tag(first, string(source[i]))
			if !taken(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

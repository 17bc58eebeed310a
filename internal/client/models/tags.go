package models

import "strings"

// TagSeparator is the delimiter used when tags are stored as one column.
const TagSeparator = ","

// NormalizeTags turns a comma-separated string into a list of trimmed,
// non-empty tags. Order is preserved, duplicates are allowed and case is
// kept. The function is idempotent: normalizing an already-joined
// normalized list yields the same list.
func NormalizeTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, TagSeparator) {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}

// NormalizeTagList applies the same trim/drop-empty rules to tags that
// already arrive as a list (e.g. from a picker instead of free typing).
func NormalizeTagList(in []string) []string {
	var tags []string
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}

// JoinTags serializes a tag list for storage. NormalizeTags(JoinTags(x))
// reproduces x for any normalized x.
func JoinTags(tags []string) string {
	return strings.Join(tags, TagSeparator)
}

package domain

import "github.com/google/uuid"

// DisplayCode derives the short human-facing code shown on labels and in the
// UI from an entity's full identifier. The uuid stays the primary key; the
// code only exists for readability.
func DisplayCode(prefix string, id uuid.UUID) string {
	return prefix + "-" + id.String()[:6]
}

// Package wificreds provides a small read-only registry of named Wi-Fi
// credential sets. The integrating application injects the table once at
// startup (keeping secrets out of version-controlled application code) and
// the registry answers lookup, validation, and enumeration queries over it.
//
// The first set in the table is the default: it is returned whenever no
// name is given or an unknown name is asked for. Name comparison is exact
// and case-sensitive. Every query is a pure function of the immutable
// table, so a Registry is safe to share between goroutines.
package wificreds

// CredentialSet holds the credentials for one named Wi-Fi network.
// A set with an empty Name is the table terminator (sentinel); it carries
// no credentials and is never returned by queries.
type CredentialSet struct {
	Name     string `json:"name"`
	SSID     string `json:"ssid"`
	Password string `json:"password"`
}

// isSentinel reports whether the set terminates a table.
func (c CredentialSet) isSentinel() bool {
	return c.Name == ""
}

// MaxCredentialSets bounds the sentinel scan at construction time.
// A table longer than this without a terminator is treated as malformed
// and truncated to this many sets rather than scanned further.
const MaxCredentialSets = 64

// Registry is an immutable view over an ordered table of credential sets.
// The zero value is an empty registry; every query on it reports absence.
type Registry struct {
	sets []CredentialSet
}

// New builds a Registry from the given sets. The table may follow the
// sentinel convention (a trailing empty-Name set); construction scans once,
// stopping at the first sentinel or at MaxCredentialSets, and keeps the
// prefix. The input slice is copied, so later mutation of the caller's
// table does not affect the registry.
func New(sets ...CredentialSet) *Registry {
	return FromTable(sets)
}

// FromTable builds a Registry from a sentinel-terminated (or plain) table.
// See New.
func FromTable(table []CredentialSet) *Registry {
	n := 0
	for n < len(table) && n < MaxCredentialSets {
		if table[n].isSentinel() {
			break
		}
		n++
	}
	sets := make([]CredentialSet, n)
	copy(sets, table[:n])
	return &Registry{sets: sets}
}

// Resolve returns the credential set for name. An empty name asks for the
// default set (the first in the table), and an unknown name silently falls
// back to it as well; callers that need a strict existence test use Has.
// The second return is false only when the table is empty.
func (r *Registry) Resolve(name string) (CredentialSet, bool) {
	if len(r.sets) == 0 {
		return CredentialSet{}, false
	}
	if name != "" {
		for _, s := range r.sets {
			if s.Name == name {
				return s, true
			}
		}
	}
	return r.sets[0], true
}

// SSID returns the SSID of the set Resolve(name) finds.
func (r *Registry) SSID(name string) (string, bool) {
	s, ok := r.Resolve(name)
	if !ok {
		return "", false
	}
	return s.SSID, true
}

// Password returns the password of the set Resolve(name) finds.
func (r *Registry) Password(name string) (string, bool) {
	s, ok := r.Resolve(name)
	if !ok {
		return "", false
	}
	return s.Password, true
}

// IsValid reports whether Resolve(name) yields a set whose SSID and
// password are both non-empty.
func (r *Registry) IsValid(name string) bool {
	s, ok := r.Resolve(name)
	return ok && s.SSID != "" && s.Password != ""
}

// SSIDLength returns the length of the resolved SSID, or 0 when the table
// is empty.
func (r *Registry) SSIDLength(name string) int {
	s, _ := r.Resolve(name)
	return len(s.SSID)
}

// PasswordLength returns the length of the resolved password, or 0 when
// the table is empty. Useful for sizing buffers without handling the
// password itself.
func (r *Registry) PasswordLength(name string) int {
	s, _ := r.Resolve(name)
	return len(s.Password)
}

// Count returns the number of credential sets in the table.
func (r *Registry) Count() int {
	return len(r.sets)
}

// CredentialName returns the name of the set at index, in table order.
// The second return is false when index is out of range.
func (r *Registry) CredentialName(index int) (string, bool) {
	if index < 0 || index >= len(r.sets) {
		return "", false
	}
	return r.sets[index].Name, true
}

// Has reports whether a set with exactly this name exists. Unlike Resolve
// it never falls back to the default, and an empty name is always false.
func (r *Registry) Has(name string) bool {
	if name == "" {
		return false
	}
	for _, s := range r.sets {
		if s.Name == name {
			return true
		}
	}
	return false
}

// DefaultName returns the name of the default set, or false when the
// table is empty.
func (r *Registry) DefaultName() (string, bool) {
	return r.CredentialName(0)
}

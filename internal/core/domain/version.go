package domain

import (
	"cmp"
	"regexp"
	"strconv"
	"strings"
)

// Known qualifier ids, lowest first. A version without a qualifier is a release.
const (
	QualifierMilestone        = "M"
	QualifierReleaseCandidate = "RC"
	QualifierSnapshot         = "BUILD-SNAPSHOT"
	QualifierRelease          = "RELEASE"
)

var knownQualifiers = []string{
	QualifierMilestone,
	QualifierReleaseCandidate,
	QualifierSnapshot,
	QualifierRelease,
}

var versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:[.-]([A-Za-z][A-Za-z-]*?)(\d+)?)?$`)

// Qualifier is the optional suffix of a version, such as "M1" or "RELEASE".
type Qualifier struct {
	// ID is the alphabetic part (e.g., "RC").
	ID string
	// Number is the numeric suffix (e.g., 2 for "RC2"), zero when absent.
	Number int
}

// String returns the qualifier as written in a version string.
func (q Qualifier) String() string {
	if q.Number == 0 {
		return q.ID
	}
	return q.ID + strconv.Itoa(q.Number)
}

// Version is a parsed, totally ordered boot version.
type Version struct {
	Major     int
	Minor     int
	Patch     int
	Qualifier *Qualifier
}

// ParseVersion parses strings like "1.3.0", "1.3.0.RELEASE", "2.0.0.M1" or "2.0.0-RC2".
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	m := versionRegex.FindStringSubmatch(trimmed)
	if m == nil {
		return Version{}, WithMeta(ErrInvalidVersion, "version", s)
	}

	var v Version
	var err error
	if v.Major, err = strconv.Atoi(m[1]); err != nil {
		return Version{}, WithMeta(ErrInvalidVersion, "version", s)
	}
	if v.Minor, err = strconv.Atoi(m[2]); err != nil {
		return Version{}, WithMeta(ErrInvalidVersion, "version", s)
	}
	if v.Patch, err = strconv.Atoi(m[3]); err != nil {
		return Version{}, WithMeta(ErrInvalidVersion, "version", s)
	}

	if m[4] != "" {
		q := &Qualifier{ID: strings.ToUpper(m[4])}
		if q.ID == "SNAPSHOT" {
			q.ID = QualifierSnapshot
		}
		if m[5] != "" {
			if q.Number, err = strconv.Atoi(m[5]); err != nil {
				return Version{}, WithMeta(ErrInvalidVersion, "version", s)
			}
		}
		v.Qualifier = q
	}
	return v, nil
}

// MustParseVersion is like ParseVersion but panics on invalid input.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// SafeParseVersion parses s and reports false instead of returning an error.
func SafeParseVersion(s string) (Version, bool) {
	v, err := ParseVersion(s)
	if err != nil {
		return Version{}, false
	}
	return v, true
}

// String formats the version using the dotted qualifier form.
func (v Version) String() string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
	if v.Qualifier != nil {
		s += "." + v.Qualifier.String()
	}
	return s
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to or after other.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Patch, other.Patch); c != 0 {
		return c
	}
	return compareQualifiers(v.qualifier(), other.qualifier())
}

// AtLeast reports whether v is greater than or equal to minimum.
func (v Version) AtLeast(minimum Version) bool {
	return minimum.Compare(v) <= 0
}

// Equal reports whether both versions sort equal.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func (v Version) qualifier() Qualifier {
	if v.Qualifier == nil {
		return Qualifier{ID: QualifierRelease}
	}
	return *v.Qualifier
}

func compareQualifiers(a, b Qualifier) int {
	ra, rb := qualifierRank(a.ID), qualifierRank(b.ID)
	if c := cmp.Compare(ra, rb); c != 0 {
		return c
	}
	// Unknown qualifiers share rank -1.
	if ra < 0 {
		if c := strings.Compare(a.ID, b.ID); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Number, b.Number)
}

func qualifierRank(id string) int {
	for i, known := range knownQualifiers {
		if id == known {
			return i
		}
	}
	return -1
}

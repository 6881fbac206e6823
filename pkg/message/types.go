// pkg/message/types.go

// Package message decides between the AI draft and the deterministic local
// fallback, classifies the conventional-commit type, and validates format.
package message

// CommitType is the closed set of recognized Conventional Commits type
// tokens. Keeping this a tagged enum avoids silent misclassification from
// free-form string matching.
type CommitType int

const (
	TypeUnclassified CommitType = iota
	TypeFeat
	TypeFix
	TypeDocs
	TypeRefactor
	TypeTest
	TypeChore
	TypeStyle
)

var commitTypeNames = map[CommitType]string{
	TypeUnclassified: "unclassified",
	TypeFeat:         "feat",
	TypeFix:          "fix",
	TypeDocs:         "docs",
	TypeRefactor:     "refactor",
	TypeTest:         "test",
	TypeChore:        "chore",
	TypeStyle:        "style",
}

func (t CommitType) String() string {
	if name, ok := commitTypeNames[t]; ok {
		return name
	}
	return "unclassified"
}

// ParseCommitType maps a type token to its enum value. Unrecognized tokens
// report false.
func ParseCommitType(s string) (CommitType, bool) {
	switch s {
	case "feat":
		return TypeFeat, true
	case "fix":
		return TypeFix, true
	case "docs":
		return TypeDocs, true
	case "refactor":
		return TypeRefactor, true
	case "test":
		return TypeTest, true
	case "chore":
		return TypeChore, true
	case "style":
		return TypeStyle, true
	default:
		return TypeUnclassified, false
	}
}

// Provenance records where a message came from.
type Provenance string

const (
	ProvenanceAI       Provenance = "ai"
	ProvenanceFallback Provenance = "fallback"
)

// Proposal is a generated commit message awaiting user confirmation.
type Proposal struct {
	Message    string
	Provenance Provenance
	Type       CommitType
}

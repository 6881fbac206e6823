// pkg/git/types.go

// Package git wraps the system Git binary: staged-change inspection and
// commit execution. The commit operation is the only one that mutates
// repository state.
package git

// ChangeSet is the staged content captured at invocation time: the file
// list in Git's reported order plus the raw unified diff.
type ChangeSet struct {
	Files []string
	Diff  string
}

// Empty reports whether nothing is staged.
func (cs *ChangeSet) Empty() bool {
	return cs == nil || (len(cs.Files) == 0 && cs.Diff == "")
}

// CommitResult describes a created commit.
type CommitResult struct {
	Hash string
}

// Status is a parsed `git status --porcelain` snapshot.
type Status struct {
	Branch    string
	IsClean   bool
	Staged    []string
	Modified  []string
	Untracked []string
}

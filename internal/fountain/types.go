package fountain

// Setup is a camera setup: a single uppercase letter tag plus a free-text
// description. Two setups are equal iff both fields match.
type Setup struct {
	Letter      string
	Description string
}

// Block is a maximal run of content lines collected under one active setup
// within one scene. Blocks are value records: no identity beyond field
// equality, never mutated after the scan.
type Block struct {
	Setup        Setup
	SceneNumber  int
	SceneHeading string
	ContentLines []string
}

// Package fountain contains the core engine for reorganizing a Fountain
// screenplay by camera setup.
//
// It defines the Setup and Block types, scans a document line by line into
// blocks tagged with their enclosing scene and active setup, regroups blocks
// by setup letter, and serializes them back into Fountain text in two
// orderings: a setup-grouped shooting schedule and a chronological annotated
// screenplay.
//
// Repeated (scene, setup) pairs are disambiguated with bijective base-26
// letter suffixes embedded in marker tokens of the form #12B# or #12BA#.
// The suffix space caps at three letters; exhausting it aborts the whole
// formatting pass.
//
// Use [Schedule] for the setup-grouped output alone, or [Reorganize] to
// produce both outputs from a single scan.
package fountain

package fountain

// Result holds the outputs of a combined reorganization pass.
type Result struct {
	Schedule   string
	Screenplay string
}

// Schedule scans text and returns the setup-grouped shooting schedule.
func Schedule(text string) (string, error) {
	blocks := NewScanner().Scan(text)
	return FormatSchedule(GroupBySetup(blocks), make(map[SuffixKey]int))
}

// Reorganize scans text once and produces both the shooting schedule and
// the chronological annotated screenplay. Each formatter runs with its own
// freshly reset disambiguation state.
func Reorganize(text string) (Result, error) {
	blocks := NewScanner().Scan(text)
	sched, err := FormatSchedule(GroupBySetup(blocks), make(map[SuffixKey]int))
	if err != nil {
		return Result{}, err
	}
	play, err := FormatScreenplay(blocks, make(map[SuffixKey]int))
	if err != nil {
		return Result{}, err
	}
	return Result{Schedule: sched, Screenplay: play}, nil
}

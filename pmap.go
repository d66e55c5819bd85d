package usas

import "sync"

// lineJob is one corpus line with its original zero-based file index.
type lineJob struct {
	index int
	line  string
}

// mapLines applies fn to every job, preserving input order in the result.
// With one worker it is a plain sequential loop. With more, lines are
// validated concurrently and the results stitched back in order; the error
// reported is the one for the earliest line, so output and failure behavior
// match the sequential path exactly.
func mapLines(jobs []lineJob, workers int, fn func(index int, line string) (*Text, error)) ([]Text, error) {
	if workers <= 1 || len(jobs) < 2 {
		texts := make([]Text, 0, len(jobs))
		for _, j := range jobs {
			t, err := fn(j.index, j.line)
			if err != nil {
				return nil, err
			}
			texts = append(texts, *t)
		}
		return texts, nil
	}

	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]*Text, len(jobs))
	errs := make([]error, len(jobs))
	next := make(chan int, len(jobs))
	for i := range jobs {
		next <- i
	}
	close(next)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				results[i], errs[i] = fn(jobs[i].index, jobs[i].line)
			}
		}()
	}
	wg.Wait()

	texts := make([]Text, 0, len(jobs))
	for i := range jobs {
		if errs[i] != nil {
			return nil, errs[i]
		}
		texts = append(texts, *results[i])
	}
	return texts, nil
}

package colorscheme

import (
	"context"
	"fmt"
	"strings"
)

type fakeResult struct {
	out []byte
	err error
}

// fakeRunner answers commands by their joined argument line and records every call.
type fakeRunner struct {
	results map[string]fakeResult
	calls   []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{results: make(map[string]fakeResult)}
}

func (f *fakeRunner) on(cmd, out string, err error) *fakeRunner {
	f.results[cmd] = fakeResult{out: []byte(out), err: err}
	return f
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	cmd := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, cmd)
	if r, ok := f.results[cmd]; ok {
		return r.out, r.err
	}
	return nil, fmt.Errorf("%s: command not found", name)
}

func (f *fakeRunner) called(prefix string) bool {
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

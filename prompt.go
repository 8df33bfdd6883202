package main

import (
	"os"

	"github.com/peterh/liner"
)

// promptReader feeds the lexer one edited line at a time. A line is only
// requested when the lexer has consumed everything before it.
type promptReader struct {
	state  *liner.State
	prompt string
	buf    []byte
}

func newPromptReader(prompt string) *promptReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	if path := historyPath(); path != "" {
		if f, err := os.Open(path); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}

	return &promptReader{state: state, prompt: prompt}
}

func (r *promptReader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		line, err := r.state.Prompt(r.prompt)
		if err == liner.ErrPromptAborted {
			// Ctrl+C drops the line being edited.
			continue
		}
		if err != nil {
			return 0, err
		}
		if line != "" {
			r.state.AppendHistory(line)
		}
		r.buf = append([]byte(line), '\n')
	}

	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

func (r *promptReader) Close() error {
	if path := historyPath(); path != "" {
		if f, err := os.Create(path); err == nil {
			_, _ = r.state.WriteHistory(f)
			_ = f.Close()
		}
	}
	return r.state.Close()
}

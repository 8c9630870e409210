package app

import (
	"types-editor/internal/table"
	"types-editor/internal/types"
)

// Session is the application context: the chosen mission directory and
// the records loaded from it. It lives on the UI goroutine.
type Session struct {
	Directory string
	Model     *table.Model
	Editor    *table.Editor
}

func NewSession() *Session {
	model := table.NewModel()
	return &Session{
		Model:  model,
		Editor: table.NewEditor(model),
	}
}

// Begin starts a fresh session for dir with an empty table
func (s *Session) Begin(dir string) {
	s.Editor.Reset()
	s.Directory = dir
	s.Model.Clear()
}

// Fill replaces the records of the current session
func (s *Session) Fill(items []types.Item) {
	s.Editor.Reset()
	s.Model.Load(items)
}

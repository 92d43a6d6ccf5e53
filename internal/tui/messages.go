package tui

type frameTickMsg struct{}

type syncDoneMsg struct{}

type printDoneMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

package app

import (
	"context"
	"errors"
	"io/fs"
)

type fakeFS struct {
	listings   map[string][]string
	dirs       map[string]bool
	removed    []string
	removedAll []string
}

func (f *fakeFS) ListDir(dir string) ([]string, error) {
	if listing, ok := f.listings[dir]; ok {
		return listing, nil
	}
	return nil, fs.ErrNotExist
}

func (f *fakeFS) IsDir(path string) bool {
	return f.dirs[path]
}

func (f *fakeFS) Remove(path string) error {
	f.removed = append(f.removed, path)
	return nil
}

func (f *fakeFS) RemoveAll(path string) error {
	f.removedAll = append(f.removedAll, path)
	return nil
}

type pickCall struct {
	title    string
	items    []string
	withDone bool
}

// scriptedMenu replays a fixed sequence of selections.
type scriptedMenu struct {
	picks [][]string
	errs  []error
	calls []pickCall
}

func (m *scriptedMenu) Pick(title string, items []string, withDone bool) ([]string, error) {
	idx := len(m.calls)
	m.calls = append(m.calls, pickCall{title: title, items: items, withDone: withDone})
	if idx >= len(m.picks) {
		return nil, errors.New("menu script exhausted")
	}
	var err error
	if idx < len(m.errs) {
		err = m.errs[idx]
	}
	return m.picks[idx], err
}

// scriptedPrompter replays answers for Ask and Confirm in call order.
type scriptedPrompter struct {
	answers  []string
	confirms []bool
	asked    []string
}

func (p *scriptedPrompter) Ask(prompt string) (string, error) {
	p.asked = append(p.asked, prompt)
	if len(p.answers) == 0 {
		return "", errors.New("prompter script exhausted")
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Confirm(prompt string) (bool, error) {
	p.asked = append(p.asked, prompt)
	if len(p.confirms) == 0 {
		return false, errors.New("prompter script exhausted")
	}
	confirmed := p.confirms[0]
	p.confirms = p.confirms[1:]
	return confirmed, nil
}

type uploadCall struct {
	local     string
	remoteDir string
}

// fakeSession records uploads and remote commands.
type fakeSession struct {
	uploads   []uploadCall
	commands  []string
	runOutput map[string]string
	uploadErr error
	runErr    map[string]error
	closed    bool
}

func (s *fakeSession) Upload(ctx context.Context, localPath, remoteDir string, progress ProgressFunc) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.uploads = append(s.uploads, uploadCall{local: localPath, remoteDir: remoteDir})
	if progress != nil {
		progress(localPath, 1024, 512)
		progress(localPath, 1024, 1024)
	}
	return nil
}

func (s *fakeSession) Run(ctx context.Context, command string) (string, error) {
	s.commands = append(s.commands, command)
	if err, ok := s.runErr[command]; ok {
		return "", err
	}
	return s.runOutput[command], nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

type fakeDialer struct {
	session *fakeSession
	err     error
	dials   int
}

func (d *fakeDialer) Dial(ctx context.Context) (RemoteSession, error) {
	d.dials++
	if d.err != nil {
		return nil, d.err
	}
	return d.session, nil
}

// fakeMounter makes a listing appear, simulating a successful mount.
type fakeMounter struct {
	fs     *fakeFS
	dir    string
	entry  []string
	err    error
	called int
}

func (m *fakeMounter) MountAsk(ctx context.Context) error {
	m.called++
	if m.err != nil {
		return m.err
	}
	m.fs.listings[m.dir] = m.entry
	return nil
}

package ui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bl3-savior/ds"
	"bl3-savior/save"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	StateListing = "listing"
	StateSummary = "summary"
)

// Browser lists the save files of one directory and shows a summary of the
// one picked with enter.
type Browser struct {
	dir      string
	files    []string
	cursor   int
	state    string
	summary  string
	errorMsg string
	logger   *slog.Logger
}

func CreateBrowser(dir string, extensions []string, logger *slog.Logger) (*Browser, error) {
	files, err := ReadDirectory(dir, extensions)
	if err != nil {
		return nil, err
	}
	return &Browser{
		dir:    dir,
		files:  files,
		state:  StateListing,
		logger: logger,
	}, nil
}

// ReadDirectory returns the sorted names of the regular files in path whose
// suffix is one of extensions, compared without regard to case.
func ReadDirectory(path string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrap(err, "ReadDirectory error")
	}
	fileNames := lo.FilterMap(
		entries,
		func(entry os.DirEntry, _ int) (string, bool) {
			if !entry.Type().IsRegular() {
				return "", false
			}
			name := entry.Name()
			return name, lo.SomeBy(extensions, func(extension string) bool {
				return strings.HasSuffix(strings.ToLower(name), strings.ToLower(extension))
			})
		},
	)
	sort.Strings(fileNames)
	return fileNames, nil
}

func (b *Browser) Init() tea.Cmd {
	return nil
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return b, tea.Quit
	}

	switch b.state {
	case StateListing:
		switch keyMsg.String() {
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.files)-1 {
				b.cursor++
			}
		case "enter":
			b.open()
		}
	case StateSummary:
		switch keyMsg.String() {
		case "esc", "backspace", "enter":
			b.state = StateListing
			b.summary = ""
			b.errorMsg = ""
		}
	}
	return b, nil
}

func (b *Browser) open() {
	if len(b.files) == 0 {
		return
	}
	path := filepath.Join(b.dir, b.files[b.cursor])
	s, err := save.Open(path, save.WithLogger(b.logger))
	b.state = StateSummary
	if err != nil {
		b.logger.Warn("could not open save", "path", path, "error", err)
		b.errorMsg = err.Error()
		return
	}
	b.summary = Summarize(s)
}

func (b *Browser) View() string {
	output := "BL3 SAVIOR\n\n"
	output += "Directory: " + b.dir + "\n\n"

	switch b.state {
	case StateListing:
		if len(b.files) == 0 {
			output += "No save files here.\n"
		}
		for i, name := range b.files {
			pointer := "  "
			if i == b.cursor {
				pointer = "> "
			}
			output += pointer + name + "\n"
		}
		output += "\nup/down: move, enter: show summary, q: quit\n"
	case StateSummary:
		output += b.files[b.cursor] + "\n\n"
		if b.errorMsg != "" {
			output += "Could not read this file:\n" + b.errorMsg + "\n"
		} else {
			output += b.summary
		}
		output += "\nesc: back, q: quit\n"
	}
	return output
}

// Summarize renders the fields a player uses to tell saves apart.
func Summarize(s *save.Save) string {
	lines := []string{
		fmt.Sprintf("Character:              %s", s.CharacterName()),
		fmt.Sprintf("Savegame ID:            %d", s.SaveGameID()),
		fmt.Sprintf("Experience points:      %d", s.ExperiencePoints()),
		fmt.Sprintf("Playthroughs completed: %d", s.PlaythroughsCompleted()),
		fmt.Sprintf("Inventory items:        %d", len(s.Items())),
	}
	mayhemLevels := s.MayhemLevels()
	completed := s.CompletedMissionCounts()
	for _, pt := range ds.MakeRange(0, s.MaxPlaythroughWithData()+1, 1) {
		station, _ := s.LastStation(pt)
		lines = append(lines, fmt.Sprintf(
			"Playthrough %d: mayhem %d, %d missions completed, last station %s",
			pt+1, mayhemLevels[pt], completed[pt], station,
		))
	}
	return strings.Join(lines, "\n") + "\n"
}

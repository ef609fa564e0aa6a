package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(dir string, extensions []string, logger *slog.Logger) error {
	browser, err := CreateBrowser(dir, extensions, logger)
	if err != nil {
		return err
	}
	if err := tea.NewProgram(browser).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}

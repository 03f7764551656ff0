package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskbuddy/internal/service"
)

func RunBoard(ctx context.Context, svc *service.Service, tick time.Duration, out io.Writer) error {
	m := newBoardModel(ctx, svc, tick)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

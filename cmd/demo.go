package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/bubbletoast/internal/logging"
	"github.com/cristianoliveira/bubbletoast/pkg/toast"
	"github.com/spf13/cobra"
)

var (
	demoConfigPath string
	demoTheme      string
	demoPosition   string
	demoMaxVisible int
	demoLogFile    string
)

// demoCmd runs an interactive showcase of the toast overlay.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive toast demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := toast.LoadConfig(demoConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		for _, w := range cfg.Normalize() {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		if demoTheme != "" {
			cfg.Toast.Theme = demoTheme
		}
		if demoPosition != "" {
			cfg.Toast.Position = demoPosition
		}
		if demoMaxVisible > 0 {
			cfg.Toast.MaxVisible = demoMaxVisible
		}
		for _, w := range cfg.Normalize() {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}

		var log toast.Logger = logging.Nop()
		if demoLogFile != "" {
			fileLog, closer, err := toast.NewFileLogger(demoLogFile, "debug")
			if err != nil {
				return err
			}
			defer closer.Close()
			log = fileLog
		}

		manager := toast.New(toast.WithConfig(cfg), toast.WithLogger(log))
		defer manager.Close()

		program := tea.NewProgram(newDemoModel(manager), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoConfigPath, "config", "", "path to a TOML config file")
	demoCmd.Flags().StringVar(&demoTheme, "theme", "", "color theme: light, dark, colored, system")
	demoCmd.Flags().StringVar(&demoPosition, "position", "", "stack anchor: top, bottom, center")
	demoCmd.Flags().IntVar(&demoMaxVisible, "max-visible", 0, "maximum concurrently visible toasts")
	demoCmd.Flags().StringVar(&demoLogFile, "log-file", "", "write debug logs to this file")
	rootCmd.AddCommand(demoCmd)
}

// demoModel is the host bubbletea model for the showcase.
type demoModel struct {
	overlay  toast.Model
	manager  *toast.Manager
	width    int
	height   int
	position toast.Position
	counter  int
	failNext bool
}

func newDemoModel(m *toast.Manager) demoModel {
	return demoModel{
		overlay:  toast.NewModel(m),
		manager:  m,
		position: toast.PositionBottom,
	}
}

func (d demoModel) Init() tea.Cmd {
	return d.overlay.Init()
}

func (d demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
	case tea.KeyMsg:
		if cmd := d.handleKey(msg); cmd != nil {
			return d, cmd
		}
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return d, tea.Quit
		}
	}
	overlay, cmd := d.overlay.Update(msg)
	d.overlay = overlay
	return d, cmd
}

func (d *demoModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	pos := toast.WithPosition(d.position)
	switch msg.String() {
	case "s":
		d.counter++
		d.manager.Success(fmt.Sprintf("Saved #%d", d.counter),
			toast.WithDescription("All changes written to disk"), pos)
	case "e":
		d.manager.Error("Something went wrong", pos)
	case "i":
		d.manager.Info("New features available", pos)
	case "w":
		d.manager.Warning("Disk space is low",
			toast.WithProgress(true), pos)
	case "l":
		d.manager.Loading("Crunching numbers...", pos)
	case "p":
		fail := d.failNext
		d.failNext = !d.failNext
		op := func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(1500 * time.Millisecond):
			}
			if fail {
				return errors.New("network unreachable")
			}
			return nil
		}
		return d.manager.PromiseCmd(op, toast.Messages{
			Pending: "Uploading report...",
			Success: "Report uploaded",
			Error:   "Upload failed",
		}, pos)
	case "d":
		toasts := d.manager.Toasts()
		if len(toasts) > 0 {
			d.manager.Hide(toasts[len(toasts)-1].ID)
		}
	case "c":
		d.manager.Hide()
	case "1":
		d.position = toast.PositionTop
	case "2":
		d.position = toast.PositionBottom
	case "3":
		d.position = toast.PositionCenter
	}
	return nil
}

var (
	demoTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7dd3fc"))
	demoHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a8a"))
)

func (d demoModel) View() string {
	if d.width == 0 {
		return "loading..."
	}
	help := []string{
		"s success  e error  i info  w warning  l loading  p promise",
		"d dismiss newest  c clear  1/2/3 anchor top/bottom/center  q quit",
		fmt.Sprintf("anchor: %s  active: %d", d.position, d.manager.Len()),
	}
	base := make([]string, d.height)
	base[0] = demoTitleStyle.Render(" bubbletoast demo")
	for i, line := range help {
		row := d.height - len(help) + i
		if row > 0 && row < d.height {
			base[row] = demoHelpStyle.Render(" " + line)
		}
	}
	return d.overlay.Overlay(strings.Join(base, "\n"))
}

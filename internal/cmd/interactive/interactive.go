// Package interactive provides the interactive command: a live
// expand-as-you-type prompt with a preview pane.
package interactive

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/zen-cli/internal/cmd/expand"
	"github.com/open-cli-collective/zen-cli/internal/config"
	"github.com/open-cli-collective/zen-cli/pkg/abbr"
)

type interactiveOptions struct {
	profile  string
	wrap     bool
	wrapFile string

	configPath string
	in         io.Reader // test override
}

// NewCmdInteractive creates the interactive command.
func NewCmdInteractive() *cobra.Command {
	opts := &interactiveOptions{}

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Expand abbreviations as you type",
		Long: `Open a prompt that re-expands the abbreviation on every keystroke and
previews the result. Enter accepts the expansion and prints it; Esc
cancels.

Changes to the configuration file are picked up live.`,
		Example: `  # Live expansion
  zen interactive

  # Live wrapping around piped content
  cat content.txt | zen interactive --wrap

  # Live wrapping around a file
  zen interactive --wrap --file content.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			return runInteractive(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "Output profile: html, xhtml, xml, or a configured profile")
	cmd.Flags().BoolVar(&opts.wrap, "wrap", false, "Wrap content instead of plain expansion")
	cmd.Flags().StringVarP(&opts.wrapFile, "file", "f", "", "Content to wrap (defaults to stdin with --wrap)")

	return cmd
}

func runInteractive(opts *interactiveOptions) error {
	engine, err := expand.LoadEngine(opts.configPath)
	if err != nil {
		return err
	}

	var body string
	if opts.wrap {
		body, err = readWrapBody(opts)
		if err != nil {
			return err
		}
	}

	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	reloads := make(chan *config.Config, 1)
	watcher, err := config.Watch(configPath, func(cfg *config.Config) {
		select {
		case reloads <- cfg:
		default:
		}
	})
	if err == nil {
		defer watcher.Close()
	}

	m := newModel(engine, opts.profile, body, reloads)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}

	fm := final.(model)
	if fm.accepted && fm.preview.applied {
		fmt.Println(fm.preview.text)
	}
	return nil
}

func readWrapBody(opts *interactiveOptions) (string, error) {
	if opts.wrapFile != "" {
		data, err := os.ReadFile(opts.wrapFile)
		if err != nil {
			return "", fmt.Errorf("failed to read content: %w", err)
		}
		return string(data), nil
	}
	in := opts.in
	if in == nil {
		in = os.Stdin
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no content to wrap (pipe content in or use --file)")
	}
	return string(data), nil
}

// previewApplier receives the session's apply steps and holds the text
// shown in the preview pane.
type previewApplier struct {
	text    string
	stops   int
	applied bool
}

func (a *previewApplier) Undo() {
	a.text = ""
	a.stops = 0
	a.applied = false
}

func (a *previewApplier) Insert(res *abbr.ExpansionResult) {
	a.text = res.Text
	a.stops = len(res.TabStops)
	a.applied = true
}

type configReloadedMsg struct{ cfg *config.Config }

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	hintStyle = lipgloss.NewStyle().Faint(true)
)

type model struct {
	input    textinput.Model
	engine   *abbr.Engine
	session  *abbr.Session
	queue    *abbr.TaskQueue
	preview  *previewApplier
	profile  string
	wrapBody string
	reloads  <-chan *config.Config

	accepted bool
}

func newModel(engine *abbr.Engine, profile, wrapBody string, reloads <-chan *config.Config) model {
	input := textinput.New()
	input.Placeholder = "ul>li*3"
	input.Focus()

	m := model{
		input:    input,
		engine:   engine,
		queue:    &abbr.TaskQueue{},
		preview:  &previewApplier{},
		profile:  profile,
		wrapBody: wrapBody,
		reloads:  reloads,
	}
	m.session = m.newSession()
	return m
}

func (m model) newSession() *abbr.Session {
	if m.wrapBody != "" {
		return abbr.NewWrapSession(m.engine, m.profile, m.wrapBody, m.preview, m.queue)
	}
	return abbr.NewSession(m.engine, m.profile, m.preview, m.queue)
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForReload())
}

func (m model) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch := m.reloads
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.accepted = true
			m.queue.Drain()
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.session.Cancel()
			m.queue.Drain()
			return m, tea.Quit
		}

	case configReloadedMsg:
		// Rebuild the engine from the new config; keep typing state.
		if engineOpts, err := msg.cfg.EngineOptions(); err == nil {
			m.engine = abbr.New(engineOpts)
			m.session = m.newSession()
			m.session.OnInput(m.input.Value())
			m.queue.Drain()
		}
		return m, m.waitForReload()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.OnInput(m.input.Value())
	m.queue.Drain()
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	title := "zen"
	if m.wrapBody != "" {
		title += " wrap"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.preview.applied {
		status := ""
		if m.preview.stops > 0 {
			status = hintStyle.Render(fmt.Sprintf("%d tab stops", m.preview.stops)) + "\n"
		}
		b.WriteString(previewStyle.Render(m.preview.text))
		b.WriteString("\n")
		b.WriteString(status)
	} else if m.input.Value() != "" {
		b.WriteString(hintStyle.Render("(not a valid abbreviation yet)"))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("enter accept · esc cancel"))
	b.WriteString("\n")
	return b.String()
}

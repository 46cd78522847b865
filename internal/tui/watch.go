package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ckode/flexscan/internal/discovery"
	"github.com/ckode/flexscan/internal/protocol"
)

// Messages for async receive results
type announcementMsg struct {
	ann *protocol.Announcement
}
type nothingHeardMsg struct{}
type receiveErrMsg struct {
	err error
}

// watchKeyMap defines key bindings for the watch screen
type watchKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Clear key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Clear, k.Quit},
	}
}

// radioEntry tracks the latest announcement per serial for display.
// The discovery core never merges packets; this aggregation is purely
// a view concern.
type radioEntry struct {
	serial string
	ann    *protocol.Announcement
	count  int
}

// radioItem wraps a radioEntry for use with bubbles/list
type radioItem struct {
	entry *radioEntry
}

// Implement list.Item interface
func (r radioItem) FilterValue() string {
	a := r.entry.ann
	return r.entry.serial + " " + a.IP + " " + a.Model + " " + a.Callsign + " " + a.Nickname
}

// Title returns the radio name for list display
func (r radioItem) Title() string {
	a := r.entry.ann
	if a.Nickname != "" {
		return a.Nickname
	}
	if a.Model != "" {
		return a.Model
	}
	return r.entry.serial
}

// Description returns radio details for list display
func (r radioItem) Description() string {
	a := r.entry.ann
	return fmt.Sprintf("%s • serial %s • %s", a.ControlAddr(), r.entry.serial, a.Status)
}

// radioDelegate is a custom list delegate for rendering radio cards
type radioDelegate struct {
	width int
}

func (d radioDelegate) Height() int { return 9 } // Card height including borders

func (d radioDelegate) Spacing() int { return 1 } // Spacing between cards

func (d radioDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d radioDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(radioItem)
	if !ok {
		return
	}

	a := ri.entry.ann
	selected := index == m.Index()

	name := ri.Title()

	var content strings.Builder
	if selected {
		content.WriteString(SelectedStyle.Render("→ " + name))
	} else {
		content.WriteString("  " + name)
	}
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("  Serial:    %s\n", ri.entry.serial))
	content.WriteString(fmt.Sprintf("  Address:   %s\n", orDash(a.ControlAddr())))
	content.WriteString(fmt.Sprintf("  Callsign:  %s\n", orDash(a.Callsign)))
	content.WriteString(fmt.Sprintf("  Firmware:  %s\n", orDash(a.Version)))
	content.WriteString(fmt.Sprintf("  Status:    %s", RenderStatus(a.Status, a.Available())))
	if a.InUseHost != "" || a.InUseIP != "" {
		content.WriteString(SubtitleStyle.Render(
			fmt.Sprintf(" (by %s %s)", a.InUseHost, a.InUseIP)))
	}
	content.WriteString("\n")
	content.WriteString(SubtitleStyle.Render(fmt.Sprintf(
		"  heard %s, %d announcement(s)", ago(a.ReceivedAt), ri.entry.count)))

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 2).
		MarginLeft(2)

	cardWidth := d.width - 6
	if cardWidth < MinTerminalWidth-6 {
		cardWidth = MinTerminalWidth - 6
	}
	if cardWidth > MaxContentWidth-6 {
		cardWidth = MaxContentWidth - 6
	}
	cardStyle = cardStyle.Width(cardWidth)

	if selected {
		cardStyle = cardStyle.BorderForeground(HighlightColor)
	}

	fmt.Fprint(w, cardStyle.Render(content.String()))
}

// WatchModel represents the live watch screen state
type WatchModel struct {
	listener *discovery.Listener

	// Radios heard so far, keyed by serial
	radios    map[string]*radioEntry
	RadioList list.Model

	// Receive statistics
	heard      int
	decodeErrs int
	lastErr    error

	// UI state
	Width   int
	Height  int
	Spinner spinner.Model
	Help    help.Model
	Keys    watchKeyMap
	started time.Time
}

// NewWatchModel creates a watch screen model around a bound listener.
// The caller keeps ownership of the listener and closes it after the
// program exits.
func NewWatchModel(listener *discovery.Listener) WatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	delegate := radioDelegate{width: MinTerminalWidth}
	radioList := list.New([]list.Item{}, delegate, 0, 0)
	radioList.Title = "Radios Heard"
	radioList.SetShowStatusBar(false)
	radioList.SetFilteringEnabled(true)
	radioList.Styles.Title = TitleStyle

	keys := watchKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}

	return WatchModel{
		listener:  listener,
		radios:    make(map[string]*radioEntry),
		RadioList: radioList,
		Spinner:   s,
		Help:      help.New(),
		Keys:      keys,
		started:   time.Now(),
	}
}

// Init starts the receive loop and the spinner
func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.receiveCmd(), m.Spinner.Tick)
}

// receiveCmd wraps one blocking ReceiveOne call as a tea.Cmd. Bubble
// Tea runs it off the UI goroutine; the result message re-issues it.
func (m WatchModel) receiveCmd() tea.Cmd {
	listener := m.listener
	return func() tea.Msg {
		ann, err := listener.ReceiveOne()
		if err != nil {
			return receiveErrMsg{err: err}
		}
		if ann == nil {
			return nothingHeardMsg{}
		}
		return announcementMsg{ann: ann}
	}
}

// Update handles messages and updates the model
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "c":
			m.radios = make(map[string]*radioEntry)
			m.heard = 0
			m.decodeErrs = 0
			m.lastErr = nil
			m.RadioList.SetItems([]list.Item{})
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.RadioList.SetDelegate(radioDelegate{width: msg.Width})
		m.RadioList.SetWidth(msg.Width - 4)
		m.RadioList.SetHeight(msg.Height - 10) // Leave room for header/footer

	case announcementMsg:
		m.heard++
		m.upsert(msg.ann)
		return m, m.receiveCmd()

	case nothingHeardMsg:
		return m, m.receiveCmd()

	case receiveErrMsg:
		m.decodeErrs++
		m.lastErr = msg.err
		return m, m.receiveCmd()

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	m.RadioList, cmd = m.RadioList.Update(msg)
	return m, cmd
}

// upsert folds an announcement into the per-serial view state and
// rebuilds the list items in a stable order.
func (m *WatchModel) upsert(ann *protocol.Announcement) {
	serial := ann.Serial
	if serial == "" && ann.Source != nil {
		// A radio that omits its serial still gets a stable card.
		serial = ann.Source.IP.String()
	}
	if serial == "" {
		return
	}

	entry, ok := m.radios[serial]
	if !ok {
		entry = &radioEntry{serial: serial}
		m.radios[serial] = entry
	}
	entry.ann = ann
	entry.count++

	serials := make([]string, 0, len(m.radios))
	for s := range m.radios {
		serials = append(serials, s)
	}
	sort.Strings(serials)

	items := make([]list.Item, len(serials))
	for i, s := range serials {
		items[i] = radioItem{entry: m.radios[s]}
	}
	m.RadioList.SetItems(items)
}

// View renders the watch screen
func (m WatchModel) View() string {
	width := m.Width
	if width == 0 {
		width = 80
	}

	var content string
	if len(m.radios) == 0 {
		content = m.renderListening()
	} else {
		content = m.RadioList.View()
	}

	statusLine := m.renderStatusLine()
	if statusLine != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, statusLine)
	}

	return RenderAppFrame(content, m.Help.View(m.Keys), width, m.Height)
}

// renderListening renders the idle state before the first announcement
func (m WatchModel) renderListening() string {
	title := fmt.Sprintf("%s LISTENING FOR RADIOS", m.Spinner.View())
	subtitle := fmt.Sprintf("Waiting for discovery broadcasts on %s...",
		m.listener.LocalAddr())
	elapsed := fmt.Sprintf("Elapsed: %ds", int(time.Since(m.started).Seconds()))

	return lipgloss.JoinVertical(lipgloss.Center,
		"",
		TitleStyle.Render(title),
		"",
		SubtitleStyle.Render(subtitle),
		"",
		SubtitleStyle.Render(elapsed),
		"",
	)
}

// renderStatusLine summarizes receive statistics and the last decode error
func (m WatchModel) renderStatusLine() string {
	if m.heard == 0 && m.decodeErrs == 0 {
		return ""
	}

	line := fmt.Sprintf("  %d announcement(s), %d radio(s), %d bad datagram(s)",
		m.heard, len(m.radios), m.decodeErrs)
	if m.lastErr != nil {
		line += "  " + ErrorStyle.Render(fmt.Sprintf("last error: %v", m.lastErr))
	}
	return SubtitleStyle.Render(line)
}

// orDash substitutes a dash for fields the announcement omitted
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// ago renders a receive timestamp as a short relative duration
func ago(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := time.Since(t)
	switch {
	case d < time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/gramod/pkg/errors"
)

const (
	promptIntro = "I will calculate G mod N."
	promptLabel = "N = "
)

// promptModulus asks for N on in. Terminals get a line editor; anything else
// is read up to the first newline.
func promptModulus(ctx context.Context, in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, promptIntro)

	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return runPrompt(ctx, f, out)
	}
	return readLine(in, out)
}

func readLine(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, promptLabel)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", errors.New(errors.ErrCodeInvalidInput, "no input for N")
		}
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read N")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runPrompt(ctx context.Context, in *os.File, out io.Writer) (string, error) {
	p := tea.NewProgram(newPromptModel(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	m := final.(promptModel)
	if m.cancelled {
		return "", context.Canceled
	}
	return m.value, nil
}

// =============================================================================
// promptModel - single line input for N
// =============================================================================

// promptModel is the bubbletea model for entering N.
type promptModel struct {
	value     string
	done      bool
	cancelled bool
}

func newPromptModel() promptModel {
	return promptModel{}
}

func (m promptModel) Init() tea.Cmd {
	return nil
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if r := []rune(m.value); len(r) > 0 {
			m.value = string(r[:len(r)-1])
		}
	case tea.KeyRunes:
		m.value += string(key.Runes)
	}
	return m, nil
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return promptLabel + m.value + "\n"
	}
	return promptLabel + StyleHighlight.Render(m.value) + StyleDim.Render("█")
}

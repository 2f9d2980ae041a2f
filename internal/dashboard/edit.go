package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/crmdash/internal/crm"
	"github.com/rileyhilliard/crmdash/internal/errors"
)

const editSuggestion = "Use field[index]=value, field=value, or field=v1,v2,..."

// EditCommand is a parsed edit prompt.
type EditCommand struct {
	Field  crm.Field
	Index  *int
	Values []float64
}

// ParseEdit reads "field[index]=value", "field=value" or "field=v1,v2,...".
// It only checks syntax and the field name; shape rules are enforced by the store.
func ParseEdit(input string) (EditCommand, error) {
	lhs, rhs, ok := strings.Cut(strings.TrimSpace(input), "=")
	if !ok {
		return EditCommand{}, errors.New(errors.ErrField,
			fmt.Sprintf("Missing '=' in %q", input), editSuggestion)
	}

	name := strings.TrimSpace(lhs)
	var index *int
	if open := strings.IndexByte(name, '['); open >= 0 {
		if !strings.HasSuffix(name, "]") {
			return EditCommand{}, errors.New(errors.ErrField,
				fmt.Sprintf("Unclosed index in %q", lhs), editSuggestion)
		}
		raw := strings.TrimSpace(name[open+1 : len(name)-1])
		i, err := strconv.Atoi(raw)
		if err != nil {
			return EditCommand{}, errors.WrapWithCode(err, errors.ErrField,
				fmt.Sprintf("Index %q is not a whole number", raw), editSuggestion)
		}
		index = &i
		name = strings.TrimSpace(name[:open])
	}

	field, err := crm.ParseField(name)
	if err != nil {
		return EditCommand{}, err
	}

	parts := strings.Split(rhs, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return EditCommand{}, errors.New(errors.ErrField,
				fmt.Sprintf("Empty value in %q", input), editSuggestion)
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(p, "_", ""), 64)
		if err != nil {
			return EditCommand{}, errors.WrapWithCode(err, errors.ErrField,
				fmt.Sprintf("%q is not a number", p), editSuggestion)
		}
		values = append(values, v)
	}

	return EditCommand{Field: field, Index: index, Values: values}, nil
}

func newEditInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "edit> "
	ti.Placeholder = "monthlySales[3]=12000"
	ti.CharLimit = 256
	ti.PromptStyle = editPromptStyle
	ti.TextStyle = ValueStyle
	ti.PlaceholderStyle = LabelStyle
	return ti
}

func (m *Model) startEdit() tea.Cmd {
	m.editing = true
	m.status = ""
	m.input.Reset()
	return m.input.Focus()
}

func (m *Model) stopEdit() {
	m.editing = false
	m.input.Blur()
}

// applyEdit parses and commits an edit. Problems go to the status line and
// never touch the alert.
func (m *Model) applyEdit(input string) tea.Cmd {
	if strings.TrimSpace(input) == "" {
		m.status = ""
		return nil
	}

	cmd, err := ParseEdit(input)
	if err == nil {
		err = m.store.SetField(cmd.Field, cmd.Index, cmd.Values...)
	}
	if err != nil {
		m.status = errors.Line(err)
		m.statusErr = true
		m.log.Debug("edit %q rejected: %v", input, err)
		return nil
	}

	m.status = fmt.Sprintf("Updated %s", describeEdit(cmd))
	m.statusErr = false
	return nil
}

func describeEdit(cmd EditCommand) string {
	if cmd.Index != nil {
		return fmt.Sprintf("%s[%d]", cmd.Field, *cmd.Index)
	}
	return string(cmd.Field)
}

package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mlowell/sitewise/internal/db"
	"github.com/mlowell/sitewise/internal/model"
	"github.com/mlowell/sitewise/internal/ui/theme"
)

type materialsMode int

const (
	materialsBrowsing materialsMode = iota
	materialsAdding
	materialsConsuming
	materialsUpdatingQty
	materialsConfirmingDelete
)

// MaterialsPanel manages a project's material inventory
type MaterialsPanel struct {
	db      *db.DB
	project model.Project
	thm     theme.Theme
	styles  theme.Styles

	materials []model.Material
	lowStock  []string
	cursor    int
	mode      materialsMode

	// Add form: name, quantity, unit cost, threshold
	inputs []textinput.Model
	focus  int
	// Single-value prompt for consume / update quantity
	amount textinput.Model

	status  string
	warnMsg string
	errMsg  string

	width  int
	height int
}

type materialsLoadedMsg struct {
	materials []model.Material
	lowStock  []string
	err       error
}

type materialMutatedMsg struct {
	status  string
	warning string
	err     error
}

// NewMaterialsPanel creates the inventory panel for one project
func NewMaterialsPanel(database *db.DB, project model.Project) MaterialsPanel {
	thm := theme.Default()

	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 50
	}
	inputs[0].Placeholder = "Material name"
	inputs[0].CharLimit = 100
	inputs[1].Placeholder = "Initial quantity"
	inputs[2].Placeholder = "Unit cost"
	inputs[3].Placeholder = "Alert threshold"

	amount := textinput.New()
	amount.CharLimit = 20

	return MaterialsPanel{
		db:      database,
		project: project,
		thm:     thm,
		styles:  theme.NewStyles(thm),
		inputs:  inputs,
		amount:  amount,
	}
}

// Init loads the material list
func (p MaterialsPanel) Init() tea.Cmd {
	return p.load
}

func (p MaterialsPanel) load() tea.Msg {
	materials, err := p.db.GetMaterialsByProject(p.project.ID)
	if err != nil {
		return materialsLoadedMsg{err: err}
	}
	lowStock, err := p.db.LowStockMaterials(p.project.ID)
	return materialsLoadedMsg{materials: materials, lowStock: lowStock, err: err}
}

// SetSize updates the panel dimensions
func (p MaterialsPanel) SetSize(width, height int) MaterialsPanel {
	p.width = width
	p.height = height
	return p
}

// InputActive reports whether the panel is capturing text input
func (p MaterialsPanel) InputActive() bool {
	return p.mode != materialsBrowsing
}

// Update handles messages
func (p MaterialsPanel) Update(msg tea.Msg) (MaterialsPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case materialsLoadedMsg:
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return p, nil
		}
		p.materials = msg.materials
		p.lowStock = msg.lowStock
		if p.cursor >= len(p.materials) {
			p.cursor = max(0, len(p.materials)-1)
		}
		return p, nil

	case materialMutatedMsg:
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return p, nil
		}
		p.status = msg.status
		p.warnMsg = msg.warning
		return p, p.load

	case tea.KeyMsg:
		switch p.mode {
		case materialsAdding:
			return p.updateAdding(msg)
		case materialsConsuming, materialsUpdatingQty:
			return p.updateAmountPrompt(msg)
		case materialsConfirmingDelete:
			return p.updateConfirmingDelete(msg)
		default:
			return p.updateBrowsing(msg)
		}
	}

	return p, nil
}

func (p MaterialsPanel) updateBrowsing(msg tea.KeyMsg) (MaterialsPanel, tea.Cmd) {
	p.status = ""
	p.warnMsg = ""
	p.errMsg = ""

	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.materials)-1 {
			p.cursor++
		}
	case "a":
		p.mode = materialsAdding
		p.focus = 0
		for i := range p.inputs {
			p.inputs[i].SetValue("")
			p.inputs[i].Blur()
		}
		return p, p.inputs[0].Focus()
	case "c":
		if len(p.materials) > 0 {
			p.mode = materialsConsuming
			p.amount.SetValue("")
			p.amount.Placeholder = "Quantity used"
			return p, p.amount.Focus()
		}
	case "u":
		if len(p.materials) > 0 {
			p.mode = materialsUpdatingQty
			p.amount.SetValue("")
			p.amount.Placeholder = "New quantity"
			return p, p.amount.Focus()
		}
	case "d":
		if len(p.materials) > 0 {
			p.mode = materialsConfirmingDelete
		}
	case "r":
		return p, p.load
	}

	return p, nil
}

func (p MaterialsPanel) updateAdding(msg tea.KeyMsg) (MaterialsPanel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.mode = materialsBrowsing
		return p, nil
	case "tab", "shift+tab", "up", "down":
		if msg.String() == "shift+tab" || msg.String() == "up" {
			p.focus = (p.focus + len(p.inputs) - 1) % len(p.inputs)
		} else {
			p.focus = (p.focus + 1) % len(p.inputs)
		}
		var cmd tea.Cmd
		for i := range p.inputs {
			if i == p.focus {
				cmd = p.inputs[i].Focus()
			} else {
				p.inputs[i].Blur()
			}
		}
		return p, cmd
	case "enter":
		in := model.CreateMaterialInput{
			ProjectID: p.project.ID,
			Name:      strings.TrimSpace(p.inputs[0].Value()),
		}
		var err error
		if in.Quantity, err = parseAmount(p.inputs[1].Value(), 0); err != nil {
			p.errMsg = "quantity must be a number"
			return p, nil
		}
		if in.UnitCost, err = parseAmount(p.inputs[2].Value(), 0); err != nil {
			p.errMsg = "unit cost must be a number"
			return p, nil
		}
		if in.AlertThreshold, err = parseAmount(p.inputs[3].Value(), 0); err != nil {
			p.errMsg = "alert threshold must be a number"
			return p, nil
		}
		p.mode = materialsBrowsing
		return p, func() tea.Msg {
			m, err := p.db.CreateMaterial(in)
			if err != nil {
				return materialMutatedMsg{err: err}
			}
			return materialMutatedMsg{status: fmt.Sprintf("added material %q", m.Name)}
		}
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd
}

func (p MaterialsPanel) updateAmountPrompt(msg tea.KeyMsg) (MaterialsPanel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.mode = materialsBrowsing
		return p, nil
	case "enter":
		qty, err := strconv.ParseFloat(strings.TrimSpace(p.amount.Value()), 64)
		if err != nil {
			p.errMsg = "enter a numeric quantity"
			return p, nil
		}
		material := p.materials[p.cursor]
		consuming := p.mode == materialsConsuming
		p.mode = materialsBrowsing
		if consuming {
			return p, func() tea.Msg {
				m, lowStock, err := p.db.LogConsumption(model.ConsumptionInput{
					MaterialID: material.ID,
					Quantity:   qty,
				})
				if err != nil {
					return materialMutatedMsg{err: err}
				}
				out := materialMutatedMsg{
					status: fmt.Sprintf("%q stock now %s", m.Name, formatQty(m.Quantity)),
				}
				if lowStock {
					out.warning = fmt.Sprintf("low stock: %q is at %s (threshold %s)",
						m.Name, formatQty(m.Quantity), formatQty(m.AlertThreshold))
				}
				return out
			}
		}
		return p, func() tea.Msg {
			m, err := p.db.UpdateQuantity(model.QuantityUpdateInput{
				MaterialID: material.ID,
				Quantity:   qty,
			})
			if err != nil {
				return materialMutatedMsg{err: err}
			}
			return materialMutatedMsg{status: fmt.Sprintf("%q stock set to %s", m.Name, formatQty(m.Quantity))}
		}
	}

	var cmd tea.Cmd
	p.amount, cmd = p.amount.Update(msg)
	return p, cmd
}

func (p MaterialsPanel) updateConfirmingDelete(msg tea.KeyMsg) (MaterialsPanel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		p.mode = materialsBrowsing
		material := p.materials[p.cursor]
		return p, func() tea.Msg {
			if err := p.db.DeleteMaterial(material.ID); err != nil {
				return materialMutatedMsg{err: err}
			}
			return materialMutatedMsg{status: fmt.Sprintf("deleted material %q", material.Name)}
		}
	case "n", "N", "esc":
		p.mode = materialsBrowsing
	}
	return p, nil
}

func parseAmount(s string, def float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}

// View renders the inventory panel
func (p MaterialsPanel) View() string {
	var b strings.Builder

	if p.mode == materialsAdding {
		b.WriteString(p.styles.Subtitle.Render("New material"))
		b.WriteString("\n")
		labels := []string{"Name", "Quantity", "Unit cost", "Threshold"}
		for i, input := range p.inputs {
			b.WriteString(fmt.Sprintf("  %s %s\n", p.styles.Label.Render(pad(labels[i]+":", 11)), input.View()))
		}
		b.WriteString(p.styles.Footer.Render("enter: add • tab: next field • esc: cancel"))
		b.WriteString("\n\n")
	}

	if len(p.materials) == 0 {
		b.WriteString(p.styles.Subtitle.Render("No materials yet. Press a to add one."))
		b.WriteString("\n")
	} else {
		header := fmt.Sprintf("  %s %s %s %s %s",
			pad("ID", 5), pad("Name", 24), pad("Quantity", 10), pad("Unit Cost", 10), pad("Threshold", 10))
		b.WriteString(p.styles.Label.Render(header))
		b.WriteString("\n")

		for i, m := range p.materials {
			row := fmt.Sprintf("%s %s %s %s %s",
				pad(fmt.Sprintf("%d", m.ID), 5),
				pad(m.Name, 24),
				pad(formatQty(m.Quantity), 10),
				pad(fmt.Sprintf("%.2f", m.UnitCost), 10),
				pad(formatQty(m.AlertThreshold), 10))

			switch {
			case i == p.cursor:
				b.WriteString(p.styles.RowSelected.Render("▸ " + row))
			case m.LowStock():
				b.WriteString(p.styles.RowWarning.Render("  " + row + " ⚠"))
			default:
				b.WriteString(p.styles.RowNormal.Render("  " + row))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if len(p.lowStock) > 0 {
		b.WriteString(p.styles.Warning.Render("Low stock: " + strings.Join(p.lowStock, ", ")))
	} else {
		b.WriteString(p.styles.Status.Render("All stock adequate"))
	}
	b.WriteString("\n")

	if p.mode == materialsConsuming || p.mode == materialsUpdatingQty {
		verb := "Log consumption for"
		if p.mode == materialsUpdatingQty {
			verb = "Set stock level for"
		}
		b.WriteString(fmt.Sprintf("\n%s %q: %s\n",
			p.styles.Label.Render(verb), p.materials[p.cursor].Name, p.amount.View()))
	}

	if p.mode == materialsConfirmingDelete && len(p.materials) > 0 {
		b.WriteString("\n")
		b.WriteString(p.styles.Warning.Render(
			fmt.Sprintf("Delete material %q? (y/n)", p.materials[p.cursor].Name)))
		b.WriteString("\n")
	}

	if p.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(p.styles.Error.Render(p.errMsg))
		b.WriteString("\n")
	} else {
		if p.warnMsg != "" {
			b.WriteString("\n")
			b.WriteString(p.styles.Warning.Render(p.warnMsg))
			b.WriteString("\n")
		}
		if p.status != "" {
			b.WriteString("\n")
			b.WriteString(p.styles.Status.Render(p.status))
			b.WriteString("\n")
		}
	}

	if p.mode == materialsBrowsing {
		b.WriteString("\n")
		b.WriteString(p.styles.Footer.Render("a: add • c: consume • u: set quantity • d: delete • r: refresh"))
	}

	return b.String()
}

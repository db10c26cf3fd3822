package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mlowell/sitewise/internal/app"
	"github.com/mlowell/sitewise/internal/db"
	"github.com/mlowell/sitewise/internal/export"
	"github.com/mlowell/sitewise/internal/ui"
)

var version = "0.1.0"

var CLI struct {
	DataDir string `help:"Data directory." type:"path"`
	DB      string `help:"Database file path." type:"path"`

	Tui     TuiCmd     `cmd:"" help:"Run the interactive project tracker." default:"1"`
	Export  ExportCmd  `cmd:"" help:"Export a project report workbook."`
	Version VersionCmd `cmd:"" help:"Show version."`
}

// config resolves the data-dir/db flags into an app config
func config() *app.Config {
	cfg := app.DefaultConfig()
	if CLI.DataDir != "" {
		cfg.DataDir = CLI.DataDir
		cfg.DBPath = filepath.Join(CLI.DataDir, "sitewise.db")
	}
	if CLI.DB != "" {
		cfg.DBPath = CLI.DB
	}
	return cfg
}

// TuiCmd runs the terminal UI
type TuiCmd struct{}

// Run starts the TUI
func (c *TuiCmd) Run() error {
	application, err := app.New(config())
	if err != nil {
		return err
	}
	defer application.Close()

	p := tea.NewProgram(ui.NewRootModel(application), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// ExportCmd writes an xlsx workbook for one project
type ExportCmd struct {
	Project int64  `required:"" help:"Project ID to export."`
	Out     string `help:"Output file path." type:"path"`
}

// Run performs the export
func (c *ExportCmd) Run() error {
	// Plain DB open: exports may run while the TUI holds the app lock
	database, err := db.Open(config().DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	out := c.Out
	if out == "" {
		p, err := database.GetProject(c.Project)
		if err != nil {
			return err
		}
		out = export.DefaultFilename(p.Name)
	}

	if err := export.WriteWorkbook(database, c.Project, out); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", out)
	return nil
}

// VersionCmd prints the version
type VersionCmd struct{}

// Run prints the version string
func (c *VersionCmd) Run() error {
	fmt.Printf("sitewise v%s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sitewise"),
		kong.Description("Single-user construction project tracker"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main is the entry point for the Taskflow TUI application.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskflow-app/taskflow-tui/internal/api"
	"github.com/taskflow-app/taskflow-tui/internal/config"
	"github.com/taskflow-app/taskflow-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `taskflow-tui - Terminal client for a Taskflow server

USAGE:
    taskflow-tui [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --server URL    Override the configured server base URL

CONFIGURATION:
    Config file: ~/.config/taskflow-tui/config.yaml

    To get started:
    1. Run 'taskflow-tui --init' to create a config template
    2. Point base_url at your Taskflow server (e.g. http://localhost:8000/api)
    3. Run 'taskflow-tui'

KEYBINDINGS:
    Navigation:
        j/k         Move down/up
        Tab         Switch between projects and tasks
        Enter       Select project

    Task Actions:
        a           Add new task
        e           Edit selected task
        x           Toggle completion
        dd          Delete task (asks for confirmation)
        y           Yank task title to clipboard

    Filters:
        /           Search (debounced while typing)
        f           Cycle completed filter (all / active / done)
        b           Set a due-before date

    Other:
        p           New project
        r           Refresh
        q           Quit
`

const configTemplate = `# Taskflow TUI Configuration
# Location: ~/.config/taskflow-tui/config.yaml

server:
  # Base URL of the Taskflow API.
  base_url: "http://localhost:8000/api"

ui:
  # Desktop notification for tasks due today (default: true)
  notifications: true
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		serverURL   string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&serverURL, "server", "", "Server base URL override")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("taskflow-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(serverURL)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit the config file and point base_url at your Taskflow server")
	fmt.Println("  2. Run 'taskflow-tui' to start")

	return nil
}

// runApp starts the main TUI application.
func runApp(serverURL string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverURL == "" {
		serverURL = cfg.Server.BaseURL
	}

	client := api.NewClient(serverURL)

	model := tui.NewModel(client, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// Package main provides the tabshell CLI application entry point.
// tabshell is an interactive shell for CSV datasets: summary statistics
// locally, spreadsheet read/write and file storage remotely.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/abiosoft/ishell/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "tabshell/internal/commands/builtin" // Import for side effects (init functions)
	"tabshell/internal/dataset"
	"tabshell/internal/logger"
	"tabshell/internal/services"
	"tabshell/internal/session"
	"tabshell/internal/shell"
	"tabshell/internal/version"
)

var (
	logLevel string
	logFile  string
	testMode bool
	csvPath  string
)

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tabshell",
	Short: "tabshell - interactive shell for tabular data",
	Long: `tabshell loads CSV datasets, computes summary statistics, and reads and
writes spreadsheet data against a remote document/storage service.`,
	Run: runShell, // Default behavior is to run the interactive shell
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	Long:  `Start the interactive tabshell session for dataset and spreadsheet commands.`,
	Run:   runShell,
}

// batchCmd represents the batch command for non-interactive script execution
var batchCmd = &cobra.Command{
	Use:   "batch <script>",
	Short: "Execute a file of tabshell commands in batch mode",
	Long: `Execute a script of tabshell command lines without entering interactive
mode. Blank lines and lines starting with # are skipped.`,
	Args: cobra.ExactArgs(1),
	Run:  runBatch,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		detailed, _ := cmd.Flags().GetBool("detailed")
		if detailed {
			fmt.Println(version.GetDetailedVersion())
			return
		}
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "", "Preload a CSV file into the session dataset")

	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-file flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("test-mode", rootCmd.PersistentFlags().Lookup("test-mode")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding test-mode flag: %v\n", err)
		os.Exit(1)
	}

	versionCmd.Flags().Bool("detailed", false, "Show detailed version and build information")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// newSession initializes services and builds the session for one run:
// optional CSV preload, then remote service attachment when a credential
// source is configured.
func newSession() (*session.Session, error) {
	if err := shell.InitializeServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	sess := session.New()

	if csvPath != "" {
		ds, err := dataset.LoadCSVFile(csvPath)
		if err != nil {
			return nil, err
		}
		sess.Dataset = ds
		logger.Info("Dataset preloaded", "path", csvPath, "rows", ds.NumRows(), "columns", ds.NumColumns())
	}

	authService, err := services.GetAuthService()
	if err != nil {
		return nil, err
	}
	if err := authService.Connect(sess); err != nil {
		logger.Warn("Remote services unavailable; running with local commands only", "error", err)
	}

	return sess, nil
}

func runShell(_ *cobra.Command, _ []string) {
	logger.Info("Starting tabshell", "version", version.GetVersion())

	sess, err := newSession()
	if err != nil {
		logger.Fatal("Failed to start session", "error", err)
	}

	sh := ishell.New()
	sh.SetPrompt("tab> ")

	// Remove the built-in help so /help goes through the dispatcher.
	sh.DeleteCmd("help")

	sh.Println(bannerStyle.Render(version.GetFormattedVersion() + " - tabular data shell"))
	sh.Println("Type '/help' for commands or 'exit' to quit.")

	sh.NotFound(shell.ProcessInput(sess))

	sh.Run()
}

func runBatch(_ *cobra.Command, args []string) {
	scriptPath := args[0]
	logger.Info("Starting tabshell batch mode", "version", version.GetVersion(), "script", scriptPath)

	sess, err := newSession()
	if err != nil {
		logger.Fatal("Failed to start session", "error", err)
	}

	file, err := os.Open(scriptPath)
	if err != nil {
		logger.Fatal("Failed to open script", "script", scriptPath, "error", err)
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result := shell.Dispatch(line, sess)
		fmt.Println(result.Message)
	}
	if err := scanner.Err(); err != nil {
		logger.Fatal("Failed to read script", "script", scriptPath, "error", err)
	}

	logger.Info("Script executed", "script", scriptPath, "turns", len(sess.Transcript))
}

package cli

import (
	"context"
	"fmt"
	"io"

	"task-tracker/internal/config"
	"task-tracker/internal/logging"

	"github.com/spf13/cobra"
)

// annotation marking commands that need an open store
const needsStore = "needs-store"

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	factory RepositoryFactory
	app     *App
}

// NewRootCommand creates the root cobra command with global flags.
// A nil factory falls back to config.CreateRepository.
func NewRootCommand(factory RepositoryFactory) *RootCommand {
	if factory == nil {
		factory = config.CreateRepository
	}
	root := &RootCommand{factory: factory}

	root.cmd = &cobra.Command{
		Use:   "tasksd",
		Short: "Task API server and administration tool",
		Long: `tasksd serves a read-only JSON API over a task store and manages the store.

EXAMPLES:
  tasksd serve --addr :8000                  # Run the HTTP API
  tasksd migrate                             # Apply pending schema migrations
  tasksd task add "Write report" --description "Q3 numbers"
  tasksd task list --format json
  tasksd task done 3                         # Mark task 3 completed
  tasksd task delete 3

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

    TASKS_DB_DRIVER                        sqlite or postgres (default: sqlite)
    TASKS_DB_DSN                           Connection string; overrides dir/filename
    TASKS_DB_DIR                           SQLite directory (default: ~/.tasks)
    TASKS_DB_FILENAME                      SQLite filename (default: tasks.db)
    TASKS_DB_DIR_PERMISSIONS               Mode for a created SQLite directory (default: 0755)
    TASKS_SERVER_ADDR                      Listen address (default: :8000)
    TASKS_APP_ENV                          development, testing or production
    TASKS_APP_VERBOSE                      Enable debug output (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[needsStore] == "" {
				return nil
			}
			return root.setup(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// SetArgs sets the arguments used instead of os.Args
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetOutput redirects command output
func (r *RootCommand) SetOutput(out, errOut io.Writer) {
	r.cmd.SetOut(out)
	r.cmd.SetErr(errOut)
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command and closes the store once it returns.
// Cancelling ctx stops a running server.
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if r.app != nil {
		if closeErr := r.app.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		r.app = nil
	}
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (yaml, toml or json)")

	// Database configuration
	flags.String("db-driver", "", "Database driver: sqlite or postgres (overrides TASKS_DB_DRIVER)")
	flags.String("db-dsn", "", "Database connection string (overrides TASKS_DB_DSN)")
	flags.String("db-dir", "", "SQLite database directory (overrides TASKS_DB_DIR)")
	flags.String("db-filename", "", "SQLite database filename (overrides TASKS_DB_FILENAME)")
	flags.Uint32("db-dir-permissions", 0, "Mode for a created SQLite directory, e.g. 0700 (overrides TASKS_DB_DIR_PERMISSIONS)")

	// Application configuration
	flags.String("env", "", "Environment: development, testing or production (overrides TASKS_APP_ENV)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TASKS_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	storeAnnotation := map[string]string{needsStore: "true"}

	// Serve command
	serveCmd := &cobra.Command{
		Use:         "serve",
		Short:       "Run the HTTP API",
		Long:        "Serve the task API until interrupted. SIGINT or SIGTERM drains in-flight requests before exiting.",
		Args:        cobra.NoArgs,
		Annotations: storeAnnotation,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewServeCommand(r.app).Execute(cmd.Context())
		},
	}
	serveCmd.Flags().String("addr", "", "Listen address (overrides TASKS_SERVER_ADDR)")

	// Migrate command
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long: `Apply pending schema migrations and print the schema version.

With --rollback the most recent migration is reverted instead.`,
		Args:        cobra.NoArgs,
		Annotations: storeAnnotation,
		RunE: func(cmd *cobra.Command, args []string) error {
			rollback, _ := cmd.Flags().GetBool("rollback")
			return NewMigrateCommand(r.app).Execute(cmd.Context(), rollback)
		},
	}
	migrateCmd.Flags().Bool("rollback", false, "Revert the most recently applied migration")

	// Task command group
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	addCmd := &cobra.Command{
		Use:         "add TITLE",
		Short:       "Add a task",
		Args:        cobra.ExactArgs(1),
		Annotations: storeAnnotation,
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			completed, _ := cmd.Flags().GetBool("completed")
			return NewAddCommand(r.app).Execute(cmd.Context(), args[0], description, completed)
		},
	}
	addCmd.Flags().StringP("description", "d", "", "Task description")
	addCmd.Flags().Bool("completed", false, "Create the task already completed")

	listCmd := &cobra.Command{
		Use:         "list",
		Short:       "List tasks, newest first",
		Args:        cobra.NoArgs,
		Annotations: storeAnnotation,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return NewListCommand(r.app).Execute(cmd.Context(), format)
		},
	}
	listCmd.Flags().StringP("format", "f", FormatTable, "Output format: table or json")

	doneCmd := &cobra.Command{
		Use:         "done ID",
		Short:       "Mark a task completed",
		Args:        cobra.ExactArgs(1),
		Annotations: storeAnnotation,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewCompleteCommand(r.app).Execute(cmd.Context(), args[0], true)
		},
	}

	reopenCmd := &cobra.Command{
		Use:         "reopen ID",
		Short:       "Mark a task not completed",
		Args:        cobra.ExactArgs(1),
		Annotations: storeAnnotation,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewCompleteCommand(r.app).Execute(cmd.Context(), args[0], false)
		},
	}

	deleteCmd := &cobra.Command{
		Use:         "delete ID",
		Short:       "Delete a task",
		Long:        "Delete a task. This operation cannot be undone.",
		Args:        cobra.ExactArgs(1),
		Annotations: storeAnnotation,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDeleteCommand(r.app).Execute(cmd.Context(), args[0])
		},
	}

	taskCmd.AddCommand(addCmd, listCmd, doneCmd, reopenCmd, deleteCmd)

	r.cmd.AddCommand(
		serveCmd,
		migrateCmd,
		taskCmd,
	)
}

// setup loads configuration, applies flag overrides and opens the store
func (r *RootCommand) setup(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loader.SetConfigFile(path)
	}

	cfg, err := loader.LoadWithOverrides(r.overridesFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logging.SetVerbose(cfg.Application.Verbose)

	repo, err := r.factory(cfg)
	if err != nil {
		return NewErrorHandler().Handle("open task store", err)
	}

	r.app = NewApp(cfg, repo, cmd.OutOrStdout())
	return nil
}

// overridesFromFlags collects the flags that were set explicitly, including
// local ones such as serve's --addr
func (r *RootCommand) overridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		value, _ := flags.GetString(name)
		return &value
	}

	overrides.DBDriver = stringFlag("db-driver")
	overrides.DBDSN = stringFlag("db-dsn")
	overrides.DBDir = stringFlag("db-dir")
	overrides.DBFilename = stringFlag("db-filename")
	if flags.Changed("db-dir-permissions") {
		perm, _ := flags.GetUint32("db-dir-permissions")
		overrides.DBDirPermissions = &perm
	}
	overrides.ServerAddr = stringFlag("addr")
	overrides.Env = stringFlag("env")
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	return overrides
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"finadvisor/internal/config"
	"finadvisor/internal/database"
	"finadvisor/internal/logger"
	"finadvisor/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:           "adduser",
		Short:         "Create a user account",
		Long:          `Create a user account directly in the database. The password is prompted for when --password is omitted.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				fmt.Fprint(stdout, "Password: ")
				var err error
				password, err = readPassword(stdin)
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				fmt.Fprintln(stdout)
			}

			users, closeFn, err := openUserService()
			if err != nil {
				return err
			}
			defer closeFn()

			return addUser(cmd.Context(), users, stdout, name, email, password)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// addUser creates the account and reports its ID.
func addUser(ctx context.Context, users services.UserServicer, stdout io.Writer, name, email, password string) error {
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	user, err := users.CreateUser(ctx, strings.TrimSpace(name), email, password)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %d\n", user.Email, user.ID)
	return nil
}

func openUserService() (services.UserServicer, func(), error) {
	appConfig, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return nil, nil, err
	}
	manager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, nil, err
	}
	if err := manager.RunMigrations(); err != nil {
		_ = manager.Close()
		return nil, nil, err
	}

	closeFn := func() {
		if err := manager.Close(); err != nil {
			logger.Get().Warnf("failed to close database: %v", err)
		}
	}
	return services.NewUserService(manager.DB()), closeFn, nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	// Not a terminal: read one line, as from a pipe.
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

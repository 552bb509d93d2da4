package main

import (
	"bufio"   // Line reading from stdin
	"errors"  // Error construction
	"fmt"     // Output
	"strings" // Newline trimming

	"capshop/internal/auth" // Password hashing

	"github.com/spf13/cobra" // CLI commands
)

// newHashPasswordCommand prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH
func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash of a password",
		Long: `Print the bcrypt hash of a password.

The password is read from the first argument, or from the first line of
stdin when no argument is given. Use the output as ADMIN_PASSWORD_HASH.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, args)
			if err != nil {
				return err
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}

func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("empty password")
	}
	return password, nil
}

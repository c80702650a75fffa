package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hrc-navate/worklog/internal/core/ports"
	"github.com/hrc-navate/worklog/internal/core/service"
	"github.com/hrc-navate/worklog/internal/infrastructure/db/mongo"
	"github.com/hrc-navate/worklog/pkg/logger"
)

var (
	adminName  string
	adminEmail string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account interactively",
	RunE:  runCreateAdmin,
}

func init() {
	createAdminCmd.Flags().StringVar(&adminName, "name", "", "Account name (prompted when empty)")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Optional e-mail address")
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	name := strings.TrimSpace(adminName)
	if name == "" {
		var err error
		if name, err = prompt(in, out, "Name: "); err != nil {
			return err
		}
	}
	password, err := readPassword(in, out)
	if err != nil {
		return err
	}

	a, err := bootstrap(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	users := service.NewUserService(mongo.NewUserRepository(a.db), logger.Component("users"))
	u, err := users.CreateAdmin(cmd.Context(), ports.CreateUserInput{
		Name:     name,
		Email:    strings.TrimSpace(adminEmail),
		Password: password,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "administrator %q created (id %s)\n", u.Name, u.ID)
	return nil
}

func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(label, ": "), err)
	}
	return strings.TrimSpace(line), nil
}

// readPassword asks twice without echo on a terminal, once from a pipe.
func readPassword(in *bufio.Reader, out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return prompt(in, out, "Password: ")
	}

	fmt.Fprint(out, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Fprint(out, "Repeat password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}

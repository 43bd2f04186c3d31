package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"invtrack/internal/models"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(
		userCreateCmd(),
		userDeleteCmd(),
		userListCmd(),
		userPasswdCmd(),
	)
	return cmd
}

func userCreateCmd() *cobra.Command {
	var name, pass, role string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireLogin()
			if err != nil {
				return err
			}
			user, err := a.authz.CreateUser(sess, name, pass, models.Role(role))
			if err != nil {
				return err
			}
			fmt.Printf("Created user %d: %s (%s)\n", user.ID, user.Username, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "username")
	cmd.Flags().StringVar(&pass, "new-password", "", "password for the new account")
	cmd.Flags().StringVar(&role, "role", "viewer", "role: admin, manager or viewer")
	return cmd
}

func userDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a user (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			sess, err := requireLogin()
			if err != nil {
				return err
			}
			if err := a.authz.DeleteUser(sess, id); err != nil {
				return err
			}
			fmt.Println("User deleted")
			return nil
		},
	}
}

func userListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireLogin()
			if err != nil {
				return err
			}
			users, err := a.authz.ListUsers(sess)
			if err != nil {
				return err
			}
			renderUsers(users)
			return nil
		},
	}
}

func userPasswdCmd() *cobra.Command {
	var pass string
	cmd := &cobra.Command{
		Use:   "passwd [id]",
		Short: "Change a user's password (own account, or any as admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			sess, err := requireLogin()
			if err != nil {
				return err
			}
			if err := a.authz.ChangePassword(sess, id, pass); err != nil {
				return err
			}
			fmt.Println("Password changed")
			return nil
		},
	}
	cmd.Flags().StringVar(&pass, "new-password", "", "the new password")
	return cmd
}

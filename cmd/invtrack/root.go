package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"invtrack/internal/auth"
	"invtrack/internal/config"
	"invtrack/internal/database"
	"invtrack/internal/logger"
	"invtrack/internal/services"
	"invtrack/internal/store"
)

// app holds the wired core shared by all commands.
type app struct {
	cfg     *config.Config
	manager *database.Manager
	authz   *auth.Service
	items   services.ItemServicer
}

var (
	a        *app
	flagUser string
	flagPass string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "invtrack",
		Short:         "Inventory tracker with roles and an audit trail",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			teardown()
		},
	}

	root.PersistentFlags().StringVar(&flagUser, "user", "", "username (or INVTRACK_USER)")
	root.PersistentFlags().StringVar(&flagPass, "password", "", "password (or INVTRACK_PASSWORD)")

	root.AddCommand(
		itemCmd(),
		exportCmd(),
		importCmd(),
		statsCmd(),
		userCmd(),
		auditCmd(),
	)
	return root
}

func setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.Env)

	if cfg.AutoBackup {
		if _, statErr := os.Stat(cfg.DBPath); statErr == nil {
			dst, backupErr := database.Backup(cfg.DBPath, cfg.BackupPath)
			if backupErr != nil {
				logger.Get().Warnf("auto-backup failed: %v", backupErr)
			} else {
				logger.Get().Infof("Backed up database to %s", dst)
			}
		}
	}

	manager, err := database.NewManager(cfg.DBPath)
	if err != nil {
		return err
	}
	if err := manager.RunMigrations(); err != nil {
		return err
	}

	st := store.New(manager.DB())
	authz := auth.NewService(st)
	if err := authz.Bootstrap(); err != nil {
		return err
	}

	a = &app{
		cfg:     cfg,
		manager: manager,
		authz:   authz,
		items:   services.NewItemService(st, authz, services.NewAuditService(st), cfg.DefaultCategory),
	}
	return nil
}

func teardown() {
	if a != nil && a.manager != nil {
		if err := a.manager.Close(); err != nil {
			logger.Get().Warnf("failed to close database: %v", err)
		}
	}
}

// login authenticates from flags or environment. Returns nil without
// error when no credentials were supplied.
func login() (*auth.Session, error) {
	user := flagUser
	if user == "" {
		user = os.Getenv("INVTRACK_USER")
	}
	pass := flagPass
	if pass == "" {
		pass = os.Getenv("INVTRACK_PASSWORD")
	}
	if user == "" {
		return nil, nil
	}
	return a.authz.Login(user, pass)
}

// requireLogin authenticates and fails when no credentials were given.
func requireLogin() (*auth.Session, error) {
	sess, err := login()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, errors.New("login required: pass --user/--password or set INVTRACK_USER/INVTRACK_PASSWORD")
	}
	return sess, nil
}

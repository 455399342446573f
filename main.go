package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"SecureEHealth/config"
	"SecureEHealth/controllers"
	"SecureEHealth/jobs"
	"SecureEHealth/migrations"
	"SecureEHealth/models"
	"SecureEHealth/routes"
	"SecureEHealth/server"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	startServer = server.Start
	loadConfig  = config.Load
	bootstrap   = server.Bootstrap
	isTest      = false
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ehealth",
		Short:         "Secure e-health records backend",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run migrations and jobs, then serve the HTTP API",
			RunE:  func(cmd *cobra.Command, args []string) error { return run() },
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations and exit",
			RunE:  func(cmd *cobra.Command, args []string) error { return withDeps(cmd.Context(), migrate) },
		},
		&cobra.Command{
			Use:   "seed-hospitals",
			Short: "Insert the bundled hospital directory",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDeps(cmd.Context(), func(ctx context.Context, deps *server.Deps) error {
					return jobs.SeedHospitals(ctx, deps.Services, deps.Log)
				})
			},
		},
		newCreateSystemAdminCmd(),
	)
	return root
}

func newCreateSystemAdminCmd() *cobra.Command {
	var req models.SystemAdminRegister
	cmd := &cobra.Command{
		Use:   "create-system-admin",
		Short: "Create a SYSTEM_ADMIN account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Email == "" || req.Password == "" {
				return errors.New("--email and --password are required")
			}
			if req.Name == "" {
				req.Name = "System Admin"
			}
			return withDeps(cmd.Context(), func(ctx context.Context, deps *server.Deps) error {
				account, err := deps.Services.CreateSystemAdmin(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created system admin %s\n", account.ID.Hex())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&req.Password, "password", "", "admin password")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	return cmd
}

// withDeps runs fn against Mongo only, without cache, jobs or HTTP.
func withDeps(ctx context.Context, fn func(ctx context.Context, deps *server.Deps) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := config.NewLogger(cfg)
	deps, err := bootstrap(ctx, cfg, log, true, false)
	if err != nil {
		return err
	}
	defer deps.Close(context.Background())
	return fn(ctx, deps)
}

func migrate(ctx context.Context, deps *server.Deps) error {
	applied, err := migrations.Run(ctx, deps.Database, deps.Log)
	if err != nil {
		return err
	}
	deps.Log.WithField("applied", applied).Info("Migrations complete")
	return nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		logrus.WithError(err).Error("Error in loading the config")
		return err
	}
	defaultopts := server.GetDefaultOptions(cfg)

	options := server.Options{
		Config:           cfg,
		Log:              config.NewLogger(cfg),
		CacheEnabled:     defaultopts.CacheEnabled,
		MongoEnabled:     defaultopts.MongoEnabled,
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    defaultopts.WebServerPort,

		JobsEnabled: defaultopts.JobsEnabled && !isTest,
		JobsHandler: func(ctx context.Context, deps *server.Deps) error {
			if isTest {
				return nil
			}
			if err := jobs.SeedHospitals(ctx, deps.Services, deps.Log); err != nil {
				return err
			}
			scheduler, err := jobs.StartDailyScheduler(deps.Services, deps.Log)
			if err != nil {
				return err
			}
			go func() {
				<-ctx.Done()
				<-scheduler.Stop().Done()
			}()
			return nil
		},

		WebServerPreHandler: func(r *gin.Engine, deps *server.Deps) {
			r.Use(cors.New(cors.Config{
				AllowOrigins:     cfg.CORSOrigins,
				AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
				AllowCredentials: !containsWildcard(cfg.CORSOrigins),
			}))
			routes.Routes(r, &controllers.Handler{
				Services: deps.Services,
				Tokens:   deps.Tokens,
				Limiter:  deps.Limiter,
			})
		},

		MigrationEnabled: defaultopts.MigrationEnabled && !isTest,
		MigrationHandler: func(ctx context.Context, deps *server.Deps) error {
			if isTest {
				return nil
			}
			return migrate(ctx, deps)
		},
	}
	return startServer(options)
}

// gin-contrib/cors refuses "*" together with credentials.
func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

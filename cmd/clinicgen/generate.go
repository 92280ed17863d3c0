package main

import (
	"context"
	"fmt"
	"os"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nroy-dev/clinicgen/internal/clinicgen/config"
	"github.com/nroy-dev/clinicgen/internal/clinicgen/gen"
	"github.com/nroy-dev/clinicgen/internal/clinicgen/logger"
	"github.com/nroy-dev/clinicgen/internal/clinicgen/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a full clinic dataset and write it to the store",
	RunE:  runGenerate,
}

var (
	flagSeed         int64
	flagPatients     int
	flagTherapists   int
	flagAppointments int
	flagTasks        int
	flagAsOf         string
	flagSQLFile      string
	flagWeights      string
)

func init() {
	generateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed (0 = time-based)")
	generateCmd.Flags().IntVar(&flagPatients, "patients", 0, "number of patients (overrides config)")
	generateCmd.Flags().IntVar(&flagTherapists, "therapists", 0, "number of therapists (overrides config)")
	generateCmd.Flags().IntVar(&flagAppointments, "appointments", 0, "number of appointments (overrides config)")
	generateCmd.Flags().IntVar(&flagTasks, "tasks", 0, "number of reception tasks (overrides config)")
	generateCmd.Flags().StringVar(&flagAsOf, "as-of", "", "generation reference time (any common format; default now)")
	generateCmd.Flags().StringVar(&flagSQLFile, "sql-file", "", "write a SQL import script instead of hitting a database")
	generateCmd.Flags().StringVar(&flagWeights, "weights", "", "YAML weights file overriding the built-in tables")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	runID := uuid.NewString()

	params := gen.Params{
		Seed:         cfg.Generate.Seed,
		Patients:     cfg.Generate.Patients,
		Therapists:   cfg.Generate.Therapists,
		Appointments: cfg.Generate.Appointments,
		Tasks:        cfg.Generate.Tasks,
		PastDays:     cfg.Generate.PastDays,
		FutureDays:   cfg.Generate.FutureDays,
	}
	if flagSeed != 0 {
		params.Seed = flagSeed
	}
	if flagPatients > 0 {
		params.Patients = flagPatients
	}
	if flagTherapists > 0 {
		params.Therapists = flagTherapists
	}
	if flagAppointments > 0 {
		params.Appointments = flagAppointments
	}
	if flagTasks > 0 {
		params.Tasks = flagTasks
	}

	if flagAsOf != "" {
		asOf, err := dateparse.ParseAny(flagAsOf)
		if err != nil {
			return fmt.Errorf("parse --as-of %q: %w", flagAsOf, err)
		}
		params.Now = asOf
	}

	weightsFile := cfg.Generate.WeightsFile
	if flagWeights != "" {
		weightsFile = flagWeights
	}
	if weightsFile != "" {
		w, err := gen.LoadWeights(weightsFile)
		if err != nil {
			return err
		}
		params.Weights = w
	}

	g, err := gen.New(params)
	if err != nil {
		return err
	}
	logger.L().Infow("Run configured", "run_id", runID, "seed", g.Seed())

	sqlFile := cfg.Output.SQLFile
	if flagSQLFile != "" {
		sqlFile = flagSQLFile
	}
	if sqlFile != "" {
		return generateToSQLFile(g, runID, sqlFile)
	}
	return generateToDatabase(cmd.Context(), g, runID)
}

// generateToSQLFile runs the engine against the default catalog and writes
// everything as an importable SQL script.
func generateToSQLFile(g *gen.Generator, runID, path string) error {
	catalog := store.DefaultCatalog()
	batch, err := g.Run(catalog)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	driver := config.Get().Database.Driver
	if err := store.WriteSQL(f, driver, runID, catalog, batch); err != nil {
		return err
	}
	logger.L().Infow("SQL script written", "path", path, "run_id", runID)
	fmt.Printf("SQL file generated: %s\n", path)
	return nil
}

// generateToDatabase recreates the schema, seeds the catalog, runs the
// engine against the catalog read back from the store, and writes the batch
// in one transaction.
func generateToDatabase(ctx context.Context, g *gen.Generator, runID string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.Get()
	db := cfg.Database

	port := db.Port
	if port == 0 {
		if db.Driver == "postgres" {
			port = 5432
		} else {
			port = 3306
		}
	}

	dsn := store.BuildDSN(db.Driver, db.User, db.Password, db.Host, port, db.Name)
	st, err := store.Open(db.Driver, dsn)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := st.SeedTreatments(ctx); err != nil {
		return err
	}

	catalog, err := st.Treatments(ctx)
	if err != nil {
		return err
	}

	batch, err := g.Run(catalog)
	if err != nil {
		return err
	}

	if err := st.InsertBatch(ctx, batch); err != nil {
		return err
	}

	sum, err := st.LoadSummary(ctx)
	if err != nil {
		return err
	}
	rate := 0.0
	if sum.Appointments > 0 {
		rate = float64(sum.Cancellations) / float64(sum.Appointments) * 100
	}
	logger.L().Infow("Run complete",
		"run_id", runID,
		"patients", sum.Patients,
		"therapists", sum.Therapists,
		"appointments", sum.Appointments,
		"cancellations", sum.Cancellations,
		"cancellation_rate_pct", fmt.Sprintf("%.1f", rate),
		"tasks", sum.Tasks,
		"avg_completed_price", fmt.Sprintf("%.2f", sum.AvgCompleted))
	return nil
}

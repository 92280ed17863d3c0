package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nroy-dev/clinicgen/internal/clinicgen/config"
	"github.com/nroy-dev/clinicgen/internal/clinicgen/store"
)

// schemaCmd recreates the clinic schema and reseeds the treatment catalog
// without generating data. Useful for resetting a store between runs, since
// repeated generation runs otherwise duplicate data.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Recreate the clinic schema and seed the treatment catalog",
	RunE:  runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
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

	st, err := store.Open(db.Driver, store.BuildDSN(db.Driver, db.User, db.Password, db.Host, port, db.Name))
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}
	return st.SeedTreatments(ctx)
}

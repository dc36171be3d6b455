package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-portal/internal/store"
)

var seedStorePath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Initialize a store file with the sample dataset",
	Long: `Create the snapshot database and populate any missing collections with the
sample companies, users and experiences. Existing collections are left
untouched, so running seed against a live store is safe.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedStorePath, "store", "portal.db", "Path to the snapshot database file")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	st, err := store.Open(ctx, seedStorePath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	if err := st.Save(ctx); err != nil {
		return fmt.Errorf("failed to write snapshots: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Store ready at %s: %d companies, %d experiences\n",
		seedStorePath, len(st.GetCompanies()), len(st.GetExperiences("")))
	return nil
}

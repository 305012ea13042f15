package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sakib9797/Hire-Skill/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved profiles in the database",
}

var profileSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save a profile JSON file under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSave,
}

var profileShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a saved profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profile names",
	RunE:  runProfileList,
}

var profileSaveFile string

func init() {
	profileSaveCmd.Flags().StringVarP(&profileSaveFile, "profile", "p", "", "Path to profile JSON file")

	profileCmd.AddCommand(profileSaveCmd, profileShowCmd, profileListCmd)
	rootCmd.AddCommand(profileCmd)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("no database_url configured")
	}
	db, err := store.Connect(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(cmd.Context()); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile(profileSaveFile)
	if err != nil {
		return err
	}

	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveProfile(cmd.Context(), args[0], profile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Saved profile %q\n", args[0])
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	profile, err := db.GetProfile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("profile %q not found", args[0])
	}
	return writeJSON("", profile)
}

func runProfileList(cmd *cobra.Command, args []string) error {
	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	names, err := db.ListProfiles(cmd.Context())
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(os.Stdout, name)
	}
	return nil
}
